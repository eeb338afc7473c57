package handlers

import (
	"fmt"
	"net/http"
)

const banner = `MVola merchant-pay adapter

GET  /         this banner
GET  /test     configuration status
POST /auth     obtain an access token
POST /payment  initiate a merchant payment
POST /webhook  receive payment result callbacks
`

type Info struct{}

func NewInfo() *Info { return &Info{} }

func (h *Info) Banner(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, banner)
}
