package usecase

import (
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/nftique/storefront/base/ctx"
	"github.com/nftique/storefront/base/contenturi"
	"github.com/nftique/storefront/base/log"
	"github.com/nftique/storefront/domain"
	"github.com/nftique/storefront/service/cache"
	"github.com/nftique/storefront/service/cache/provider/primitive"
)

type MetadataUseCaseCfg struct {
	HttpReader  domain.WebResourceReaderRepository
	IpfsReader  domain.WebResourceReaderRepository
	UriResolver *contenturi.Resolver
	// Cache holds fetched documents keyed by url; defaults to an
	// in-process freecache when unset
	Cache cache.Service
}

type metadataUseCase struct {
	httpReader  domain.WebResourceReaderRepository
	ipfsReader  domain.WebResourceReaderRepository
	uriResolver *contenturi.Resolver
	cache       cache.Service
}

func NewMetadataUseCase(cfg *MetadataUseCaseCfg) domain.MetadataUseCase {
	ca := cfg.Cache
	if ca == nil {
		ca = cache.New(cache.ServiceConfig{
			Ttl:   10 * time.Minute,
			Pfx:   "metadataPfx",
			Cache: primitive.NewPrimitive("metadata", 64),
		})
	}
	return &metadataUseCase{
		httpReader:  cfg.HttpReader,
		ipfsReader:  cfg.IpfsReader,
		uriResolver: cfg.UriResolver,
		cache:       ca,
	}
}

// GetFromURL fetches and parses a metadata document, caching parsed
// documents by url. Every failure wraps domain.ErrMetadataUnavailable
// so callers can degrade to fallback display values without inspecting
// the cause.
func (u *metadataUseCase) GetFromURL(c bCtx.Ctx, rawUrl string) (*domain.TokenMetadata, error) {
	metadata := &domain.TokenMetadata{}
	if err := u.cache.GetByFunc(c, rawUrl, metadata, func() (interface{}, error) {
		return u.fetch(c, rawUrl)
	}); err != nil {
		return nil, err
	}
	return metadata, nil
}

func (u *metadataUseCase) fetch(c bCtx.Ctx, rawUrl string) (*domain.TokenMetadata, error) {
	var (
		data []byte
		err  error
	)

	pUrl, err := url.Parse(rawUrl)
	if err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Error("failed to parse url")
		return nil, xerrors.Errorf("parse %s: %v: %w", rawUrl, err, domain.ErrMetadataUnavailable)
	}

	switch pUrl.Scheme {
	case "https", "http":
		data, err = u.httpReader.Get(c, rawUrl)
	case "ipfs":
		cid := strings.TrimPrefix(rawUrl, "ipfs://")
		cid = strings.TrimPrefix(cid, "ipfs/")
		data, err = u.ipfsReader.Get(c, cid)
	default:
		return nil, xerrors.Errorf("%s: %v: %w", rawUrl, domain.ErrUnsupportedScheme, domain.ErrMetadataUnavailable)
	}

	if err != nil {
		c.WithFields(log.Fields{
			"scheme": pUrl.Scheme,
			"url":    rawUrl,
			"err":    err,
		}).Error("failed to fetch")
		return nil, xerrors.Errorf("fetch %s: %v: %w", rawUrl, err, domain.ErrMetadataUnavailable)
	}

	metadata := &domain.TokenMetadata{}
	if err := json.Unmarshal(data, metadata); err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Error("invalid json")
		return nil, xerrors.Errorf("parse metadata of %s: %v: %w", rawUrl, err, domain.ErrMetadataUnavailable)
	}
	metadata.Image = u.uriResolver.Resolve(metadata.Image)

	return metadata, nil
}
