package vanilla

import (
	"context"

	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/renderers/vanilla/components"
)

// PricingTier describes one pricing card.
type PricingTier struct {
	Name     string `json:"name" yaml:"name"`
	Price    string `json:"price" yaml:"price"`
	Currency string `json:"currency,omitempty" yaml:"currency,omitempty"`
	// Period is printed verbatim after the price, e.g. "/month".
	Period      string   `json:"period,omitempty" yaml:"period,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Features    []string `json:"features,omitempty" yaml:"features,omitempty"`
	CTAText     string   `json:"cta_text" yaml:"cta_text"`
	CTALink     string   `json:"cta_link" yaml:"cta_link"`
	Highlighted bool     `json:"highlighted,omitempty" yaml:"highlighted,omitempty"`
	Badge       string   `json:"badge,omitempty" yaml:"badge,omitempty"`
}

type featurePayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type testimonialPayload struct {
	Quote     string `json:"quote"`
	Author    string `json:"author"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url"`
}

// FeatureCard renders a feature highlight. The icon is typically an inline
// SVG or an emoji and is sanitized before embedding.
func (r *Renderer) FeatureCard(title, description string, icon render.Component) render.Component {
	return r.component(components.NameFeatureCard, func(ctx context.Context) (any, error) {
		iconHTML, err := render.String(ctx, icon)
		if err != nil {
			return nil, err
		}
		return featurePayload{
			Title:       title,
			Description: description,
			Icon:        sanitizeIcon(iconHTML),
		}, nil
	})
}

// PricingCard renders one pricing tier.
func (r *Renderer) PricingCard(tier PricingTier) render.Component {
	return r.component(components.NamePricingCard, func(context.Context) (any, error) {
		return tier, nil
	})
}

// TestimonialCard renders a quote with its author. The avatar is omitted
// when avatarURL is empty.
func (r *Renderer) TestimonialCard(quote, author, role, avatarURL string) render.Component {
	return r.component(components.NameTestimonialCard, func(context.Context) (any, error) {
		return testimonialPayload{
			Quote:     quote,
			Author:    author,
			Role:      role,
			AvatarURL: avatarURL,
		}, nil
	})
}
