// Package proto carries the gRPC service definitions. The generated
// packages live under <service>/v1/generated and are refreshed with
// go generate.
package proto

//go:generate protoc -I. --go_out=module=github.com/nestlist/nestlist/api/proto:. --go-grpc_out=module=github.com/nestlist/nestlist/api/proto:. auth/v1/auth.proto todo/v1/todo.proto
