package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-library-sync/models"
	"github.com/goccy/go-json"
)

const (
	legacyRPCVersion  = "2.0"
	legacyFindMethod  = "stream.find"
	legacyFindLimit   = 100
	legacyTopSortID   = "top"
	legacyPopularity  = "popularity"
	legacyQueryPath   = "/q.json"
	legacyPayloadName = "b"
)

// legacyBuildable reports whether a legacy request can be built for kind.
func legacyBuildable(kind models.ResourceKind) bool {
	switch kind {
	case models.ResourceCatalog, models.ResourceMeta, models.ResourceStreams:
		return true
	default:
		return false
	}
}

// legacyInterpretable reports whether a legacy response can be mapped for
// kind. Streams can be requested but their responses are not understood.
func legacyInterpretable(kind models.ResourceKind) bool {
	switch kind {
	case models.ResourceCatalog, models.ResourceMeta:
		return true
	default:
		return false
	}
}

// LegacyRequest is a ready-to-send legacy call. The body is always empty.
type LegacyRequest struct {
	Method string
	URL    string
}

// Field order follows the key order the legacy addons were fed historically
// (keys sorted alphabetically).
type legacyRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  legacyFindTuple `json:"params"`
}

// legacyFindTuple is the [null, params] tuple of stream.find. The first
// slot is always null.
type legacyFindTuple [2]*legacyFindParams

type legacyFindParams struct {
	Limit int             `json:"limit"`
	Query legacyFindQuery `json:"query"`
	Skip  *string         `json:"skip"`
	Sort  map[string]int  `json:"sort"`
}

type legacyFindQuery struct {
	Genre *string `json:"genre"`
}

// BuildLegacyRequest translates req into a legacy GET call without doing any
// I/O: the JSON-RPC payload is serialized, encoded with
// [LegacyParamEncoding] and appended to {TransportURL}/q.json as the "b"
// query parameter.
//
// Returns [ErrUnsupportedResource] for kinds other than catalog, meta and
// streams, and [ErrRequestBuildFailure] when the payload cannot be built.
func BuildLegacyRequest(req models.ResourceRequest) (LegacyRequest, error) {
	payload, err := legacyPayload(req.ResourceRef)
	if err != nil {
		return LegacyRequest{}, err
	}

	raw, err := marshalLegacyPayload(payload)
	if err != nil {
		return LegacyRequest{}, fmt.Errorf("%w: %w", ErrRequestBuildFailure, err)
	}

	url := fmt.Sprintf("%s%s?%s=%s", req.TransportURL, legacyQueryPath, legacyPayloadName, encodeLegacyParam(raw))
	return LegacyRequest{Method: http.MethodGet, URL: url}, nil
}

// marshalLegacyPayload serializes payload without HTML escaping, so '&', '<'
// and '>' reach the addon as they are.
func marshalLegacyPayload(payload any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func legacyPayload(ref models.ResourceRef) (any, error) {
	if !legacyBuildable(ref.Resource) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedResource, ref.Resource)
	}
	if ref.ID == "" {
		return nil, fmt.Errorf("%w: %w", ErrRequestBuildFailure, errors.New("empty resource id"))
	}

	switch ref.Resource {
	case models.ResourceCatalog:
		return legacyCatalogPayload(ref), nil
	default:
		// meta and streams are sent as an empty object
		return struct{}{}, nil
	}
}

func legacyCatalogPayload(ref models.ResourceRef) legacyRPCRequest {
	// the requested id doubles as the sort field
	var sort map[string]int
	if ref.ID != legacyTopSortID {
		sort = map[string]int{
			ref.ID:           -1,
			legacyPopularity: -1,
		}
	}

	return legacyRPCRequest{
		JSONRPC: legacyRPCVersion,
		Method:  legacyFindMethod,
		Params: legacyFindTuple{nil, &legacyFindParams{
			Limit: legacyFindLimit,
			Query: legacyFindQuery{Genre: ref.ExtraFirstValue("genre")},
			Skip:  ref.ExtraFirstValue("skip"),
			Sort:  sort,
		}},
	}
}
