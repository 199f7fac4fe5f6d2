package adapter

import "encoding/base64"

// LegacyParamEncoding encodes the JSON payload carried in the "b" query
// parameter of legacy requests.
//
// It is the standard, padded, non-URL-safe alphabet. '+', '/' and '=' are
// therefore sent unescaped in the query string. Legacy addons decode the
// parameter with the same alphabet, so changing it breaks compatibility with
// them.
var LegacyParamEncoding = base64.StdEncoding

func encodeLegacyParam(payload []byte) string {
	return LegacyParamEncoding.EncodeToString(payload)
}
