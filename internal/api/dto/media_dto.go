package dto

type PhotoDTO struct {
	ID           uint64  `json:"id"`
	URL          string  `json:"url"`
	OriginalName *string `json:"original_name"`
	CreatedAt    string  `json:"created_at"`
}

type AttachmentDTO struct {
	ID           uint64  `json:"id"`
	URL          string  `json:"url"`
	OriginalName *string `json:"original_name"`
	Mime         string  `json:"mime"`
	Kind         string  `json:"kind"`
	CreatedAt    string  `json:"created_at"`
}

type MediaListDTO struct {
	Photos      []*PhotoDTO      `json:"photos"`
	Attachments []*AttachmentDTO `json:"attachments"`
}
