package http

import (
	pkghttp "github.com/klwxsrx/tagabukid-property/pkg/http"
)

const (
	DestinationSupabase pkghttp.Destination = "supabase"
)

const RequestIDHeader = pkghttp.DefaultRequestIDHeader
