package comments

import (
	"time"

	"github.com/blogapp/blog-server/internal/db/sqlc"
)

type Comment struct {
	ID         string    `json:"id"`
	Conteudo   string    `json:"conteudo"`
	UsuarioID  string    `json:"usuarioId"`
	PostagemID string    `json:"postagemId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CreateInput struct {
	Conteudo   string
	UsuarioID  string
	PostagemID string
}

func fromRow(c sqlc.Comment) Comment {
	return Comment{
		ID:         c.ID.String(),
		Conteudo:   c.Conteudo,
		UsuarioID:  c.UsuarioID.String(),
		PostagemID: c.PostagemID.String(),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
