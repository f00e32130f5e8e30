package dto

type CreateCommentRequest struct {
	Conteudo  string `json:"conteudo" binding:"required,min=2"`
	UsuarioID string `json:"usuarioId" binding:"omitempty,uuid"`
}

type UpdateCommentRequest struct {
	Conteudo string `json:"conteudo" binding:"required,min=2"`
}
