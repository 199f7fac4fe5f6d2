// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ResourceKind is the closed set of resources an addon can be asked for.
// The same value drives both request building and response interpretation
// in the transport layer, so a new kind has to be handled in both places.
type ResourceKind int

const (
	// ResourceUnknown is any resource name the application does not recognise.
	ResourceUnknown ResourceKind = iota
	// ResourceCatalog is a list of meta previews ("catalog").
	ResourceCatalog
	// ResourceMeta is a single detailed meta item ("meta").
	ResourceMeta
	// ResourceStreams is the list of streams for a video ("streams").
	ResourceStreams
)

// ParseResourceKind maps the wire name of a resource to its [ResourceKind].
// Unrecognised names map to [ResourceUnknown].
func ParseResourceKind(name string) ResourceKind {
	switch name {
	case "catalog":
		return ResourceCatalog
	case "meta":
		return ResourceMeta
	case "streams":
		return ResourceStreams
	default:
		return ResourceUnknown
	}
}

// String returns the wire name of the resource kind.
func (k ResourceKind) String() string {
	switch k {
	case ResourceCatalog:
		return "catalog"
	case ResourceMeta:
		return "meta"
	case ResourceStreams:
		return "streams"
	default:
		return "unknown"
	}
}

// ExtraProp is a single name/value pair of the extra request properties
// (for example genre=Drama or skip=100).
type ExtraProp struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ResourceRef identifies a resource inside an addon: what is requested
// (Resource), for which content type (TypeName), which item (ID), and with
// which extra properties.
//
// Extra is an ordered multimap: the same name may appear more than once and
// the order of the pairs is preserved.
type ResourceRef struct {
	Resource ResourceKind `json:"resource"`
	TypeName string       `json:"type"`
	ID       string       `json:"id"`
	Extra    []ExtraProp  `json:"extra,omitempty"`
}

// ExtraFirstValue returns the first value stored under name, or nil when the
// name is absent. A nil result is serialized as JSON null by the legacy
// protocol.
func (r ResourceRef) ExtraFirstValue(name string) *string {
	for i := range r.Extra {
		if r.Extra[i].Name == name {
			v := r.Extra[i].Value
			return &v
		}
	}
	return nil
}

// ResourceRequest is a transport-agnostic "fetch resource" request addressed
// to a single addon.
type ResourceRequest struct {
	// TransportURL is the base URL of the addon, without a trailing slash.
	TransportURL string `json:"transportUrl"`
	// ResourceRef describes the requested resource.
	ResourceRef ResourceRef `json:"resourceRef"`
}

// NewCatalogRequest is a shortcut for a catalog request with optional extra
// properties.
func NewCatalogRequest(transportURL, typeName, id string, extra ...ExtraProp) ResourceRequest {
	return ResourceRequest{
		TransportURL: transportURL,
		ResourceRef: ResourceRef{
			Resource: ResourceCatalog,
			TypeName: typeName,
			ID:       id,
			Extra:    extra,
		},
	}
}

// NewMetaRequest is a shortcut for a meta request.
func NewMetaRequest(transportURL, typeName, id string) ResourceRequest {
	return ResourceRequest{
		TransportURL: transportURL,
		ResourceRef: ResourceRef{
			Resource: ResourceMeta,
			TypeName: typeName,
			ID:       id,
		},
	}
}
