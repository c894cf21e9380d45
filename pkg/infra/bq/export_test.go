package bq

var (
	ProtoFieldJSONName = protoFieldJSONName
	SanitizeProtoJSON  = sanitizeProtoJSON
	EncodeRows         = encodeRows
)
