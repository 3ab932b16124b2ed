package domain

import (
	"fmt"

	"github.com/nftique/storefront/base/ctx"
)

// PlaceholderImage is shown when a token has no reachable image
const PlaceholderImage = "https://via.placeholder.com/400"

// TokenMetadata is the recognized portion of the off-chain metadata
// document. All fields are optional in the source document.
type TokenMetadata struct {
	Image       string `json:"image"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FallbackMetadata produces the degraded display values used when the
// metadata document is unreachable or unparsable.
func FallbackMetadata(tokenId TokenId) *TokenMetadata {
	return &TokenMetadata{
		Image:       PlaceholderImage,
		Name:        fmt.Sprintf("NFT #%s", tokenId),
		Description: "",
	}
}

// FillDefaults applies per-field fallbacks to a fetched document whose
// optional fields are missing.
func (m *TokenMetadata) FillDefaults(tokenId TokenId) {
	if m.Name == "" {
		m.Name = fmt.Sprintf("NFT #%s", tokenId)
	}
	if m.Image == "" {
		m.Image = PlaceholderImage
	}
}

type MetadataUseCase interface {
	GetFromURL(ctx.Ctx, string) (*TokenMetadata, error)
}
