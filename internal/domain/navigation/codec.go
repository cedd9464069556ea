package navigation

import (
	"net/url"
	"strconv"

	"github.com/vellaperfumeria/storefront/internal/domain/catalog"
	"github.com/vellaperfumeria/storefront/internal/domain/content"
)

// Query parameters understood by the storefront
const (
	ParamToken     = "v"
	ParamProductID = "product_id"
	ParamCategory  = "category"
	ParamView      = "view"
	ParamPostID    = "post_id"
)

// Codec converts between navigation states and URL query strings. Object
// payloads are not carried in the URL; they are reconstructed by catalog
// and blog lookups from the embedded IDs
type Codec struct {
	products catalog.ProductRepository
	posts    content.PostRepository
}

// NewCodec creates a codec resolving payloads against the given datasets
func NewCodec(products catalog.ProductRepository, posts content.PostRepository) *Codec {
	return &Codec{
		products: products,
		posts:    posts,
	}
}

// Parse derives a state from a raw query string. Parameters are tried in
// priority order: explicit product ID, then category, then blog post,
// then any recognized view name. Unresolvable parameters fall through to
// the next rule; malformed input resolves to home, never to an error
func (c *Codec) Parse(rawQuery string) State {
	params, err := url.ParseQuery(rawQuery)
	if err != nil {
		return Home()
	}

	if raw := params.Get(ParamProductID); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			if product, err := c.products.FindByID(id); err == nil {
				return ProductDetail(product)
			}
		}
	}

	if category := params.Get(ParamCategory); category != "" {
		return Products(catalog.CategoryKey(category))
	}

	view := View(params.Get(ParamView))
	if view == ViewBlogPost {
		if id, err := strconv.Atoi(params.Get(ParamPostID)); err == nil {
			if post, err := c.posts.FindByID(id); err == nil {
				return BlogPost(post)
			}
		}
	}
	if view.IsValid() {
		return Plain(view)
	}

	return Home()
}

// Token extracts the session/cart token from a raw query string. The
// token is opaque and preserved verbatim across URL rewrites
func Token(rawQuery string) string {
	params, err := url.ParseQuery(rawQuery)
	if err != nil {
		return ""
	}
	return params.Get(ParamToken)
}

// Encode projects a state onto URL query values. Home emits no
// view-identifying parameters; a non-empty token is always carried
func Encode(s State, token string) url.Values {
	params := url.Values{}
	if token != "" {
		params.Set(ParamToken, token)
	}

	switch {
	case s.Current == ViewProductDetail && s.Product != nil:
		params.Set(ParamProductID, strconv.Itoa(s.Product.ID))
	case s.Current == ViewProducts && s.Category != "" && s.Category != catalog.CategoryAll:
		params.Set(ParamCategory, s.Category.String())
	case s.Current == ViewBlogPost && s.Post != nil:
		params.Set(ParamView, ViewBlogPost.String())
		params.Set(ParamPostID, strconv.Itoa(s.Post.ID))
	case s.Current != ViewHome:
		params.Set(ParamView, s.Current.String())
	}

	return params
}

// EncodeQuery is Encode rendered as a canonical query string. The
// rendering is deterministic, so unchanged states produce identical
// strings and history writes can be skipped by comparison
func EncodeQuery(s State, token string) string {
	return Encode(s, token).Encode()
}
