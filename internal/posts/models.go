package posts

import (
	"time"

	"github.com/blogapp/blog-server/internal/db/sqlc"
)

type Post struct {
	ID        string    `json:"id"`
	Titulo    string    `json:"titulo"`
	Conteudo  string    `json:"conteudo"`
	AuthorID  string    `json:"authorId"`
	Imagem    *string   `json:"imagem"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateInput struct {
	Titulo    string
	Conteudo  string
	AuthorID  string
	Imagem    *string
	Published bool
}

// UpdateInput carries optional fields; nil leaves the stored value untouched.
type UpdateInput struct {
	Titulo    *string
	Conteudo  *string
	Imagem    *string
	Published *bool
}

type ListFilter struct {
	AuthorID string
	Limit    int
	Offset   int
}

func fromRow(p sqlc.Post) Post {
	post := Post{
		ID:        p.ID.String(),
		Titulo:    p.Titulo,
		Conteudo:  p.Conteudo,
		AuthorID:  p.AuthorID.String(),
		Published: p.Published,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Imagem.Valid {
		img := p.Imagem.String
		post.Imagem = &img
	}
	return post
}
