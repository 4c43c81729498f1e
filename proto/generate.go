package proto

//go:generate protoc --proto_path=. --go_out=../gen/proto --go_opt=module=github.com/docflowhq/docflow/gen/proto --go-grpc_out=../gen/proto --go-grpc_opt=module=github.com/docflowhq/docflow/gen/proto docflow/v1/docflow.proto
