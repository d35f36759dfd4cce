// Package proto holds the tasktrack service definitions. Generated code lives
// under gen/.
package proto

//go:generate protoc --proto_path=. --go_out=gen --go_opt=paths=source_relative --go-grpc_out=gen --go-grpc_opt=paths=source_relative tasktrack/common.proto tasktrack/auth.proto tasktrack/tasks.proto tasktrack/system.proto
