package repository

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	bCtx "github.com/nftique/storefront/base/ctx"
)

func Test_httpReaderRepo_Get(t *testing.T) {
	req := require.New(t)
	body := `{"name":"Cosmic Cat #7","description":"A cat in space","image":"ipfs://QmImg"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/meta/7" {
			w.Write([]byte(body))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	ctx := bCtx.Background()
	r := NewHttpReaderRepo(http.Client{}, 10*time.Second)

	b, err := r.Get(ctx, srv.URL+"/meta/7")
	req.NoError(err)
	req.Equal([]byte(body), b)

	_, err = r.Get(ctx, srv.URL+"/meta/missing")
	req.Error(err)
}
