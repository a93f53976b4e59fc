package api

//go:generate oapi-codegen -generate types,echo-server -package api -o api.gen.go ../../api/openapi.yaml
