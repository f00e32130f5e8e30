package dto

type CreatePostRequest struct {
	Titulo    string  `json:"titulo" binding:"required,min=4"`
	Conteudo  string  `json:"conteudo" binding:"required,min=10"`
	AuthorID  string  `json:"authorId" binding:"omitempty,uuid"`
	Imagem    *string `json:"imagem"`
	Published bool    `json:"published"`
}

type UpdatePostRequest struct {
	Titulo    *string `json:"titulo" binding:"omitempty,min=4"`
	Conteudo  *string `json:"conteudo" binding:"omitempty,min=10"`
	Imagem    *string `json:"imagem"`
	Published *bool   `json:"published"`
}
