package staticdata

import (
	"github.com/vellaperfumeria/storefront/internal/domain/content"
	"github.com/vellaperfumeria/storefront/internal/domain/shared"
)

// PostRepository serves the static blog dataset from memory
type PostRepository struct {
	posts []*content.Post
	byID  map[int]*content.Post
}

// NewPostRepository creates a repository over the given posts
func NewPostRepository(posts []*content.Post) *PostRepository {
	byID := make(map[int]*content.Post, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}
	return &PostRepository{
		posts: posts,
		byID:  byID,
	}
}

// NewDefaultPostRepository creates a repository seeded with the shop's
// built-in blog posts
func NewDefaultPostRepository() *PostRepository {
	return NewPostRepository(defaultPosts())
}

// FindByID implements content.PostRepository
func (r *PostRepository) FindByID(id int) (*content.Post, error) {
	if p, ok := r.byID[id]; ok {
		return p, nil
	}
	return nil, shared.ErrNotFound
}

// All implements content.PostRepository
func (r *PostRepository) All() []*content.Post {
	out := make([]*content.Post, len(r.posts))
	copy(out, r.posts)
	return out
}

func defaultPosts() []*content.Post {
	return []*content.Post{
		{
			ID:      3,
			Title:   "Rutina facial de noche en 4 pasos",
			Slug:    "rutina-facial-noche",
			Excerpt: "Limpieza, tónico, sérum y crema: el orden importa.",
		},
		{
			ID:      2,
			Title:   "Cómo elegir tu fragancia de verano",
			Slug:    "fragancia-verano",
			Excerpt: "Notas cítricas y acuáticas para los días de calor.",
		},
		{
			ID:      1,
			Title:   "Maquillaje natural para el día a día",
			Slug:    "maquillaje-natural",
			Excerpt: "Menos es más: base ligera y labios con color.",
		},
	}
}
