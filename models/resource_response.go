package models

// ResponseKind tags the variant held by [ResourceResponse].
type ResponseKind int

const (
	// ResponseMetas holds a catalog: a sequence of [MetaPreview].
	ResponseMetas ResponseKind = iota + 1
	// ResponseMeta holds a single [MetaItem].
	ResponseMeta
)

// ResourceResponse is the typed result of a resource fetch. Only the field
// selected by Kind is meaningful; Kind always corresponds to the
// [ResourceKind] of the request that produced the response.
type ResourceResponse struct {
	Kind  ResponseKind  `json:"-"`
	Metas []MetaPreview `json:"metas,omitempty"`
	Meta  *MetaItem     `json:"meta,omitempty"`
}

// NewMetasResponse wraps a catalog result.
func NewMetasResponse(metas []MetaPreview) ResourceResponse {
	if metas == nil {
		metas = []MetaPreview{}
	}
	return ResourceResponse{Kind: ResponseMetas, Metas: metas}
}

// NewMetaResponse wraps a single meta item result.
func NewMetaResponse(meta MetaItem) ResourceResponse {
	return ResourceResponse{Kind: ResponseMeta, Meta: &meta}
}
