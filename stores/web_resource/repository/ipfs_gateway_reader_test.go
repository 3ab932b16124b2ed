package repository

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	bCtx "github.com/nftique/storefront/base/ctx"
)

func Test_ipfsGatewayReaderRepo_Get(t *testing.T) {
	req := require.New(t)
	cid := "QmQqzKQQmwt5sxygmKdNDUj9XD5FmgELLaQ72h2tFdgeBV/metadata.json"
	body := `{"name":"REBIRTH"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ipfs/"+cid {
			w.Write([]byte(body))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	ctx := bCtx.Background()
	// trailing slash on the gateway must not produce a double slash
	r := NewIpfsGatewayReaderRepo(http.Client{}, srv.URL+"/", 10*time.Second)

	b, err := r.Get(ctx, cid)
	req.NoError(err)
	req.Equal([]byte(body), b)

	_, err = r.Get(ctx, "QmMissing")
	req.Error(err)
}
