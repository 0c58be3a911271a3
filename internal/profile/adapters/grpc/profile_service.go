// Package grpc содержит gRPC клиент удаленного сервиса профилей.
//
// Контракт сервиса описан без сгенерированного кода: запрос и ответ передаются
// как google.protobuf.Struct.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Имена полей и методов контракта profile.v1.ProfileService.
const (
	ServiceName          = "profile.v1.ProfileService"
	MethodGetUserProfile = "GetUserProfile"
	FullMethodGetProfile = "/" + ServiceName + "/" + MethodGetUserProfile

	FieldUserID   = "user_id"
	FieldID       = "id"
	FieldFullName = "full_name"
	FieldImageURL = "image_url"
)

// ProfileServiceServer - серверная сторона контракта.
type ProfileServiceServer interface {
	GetUserProfile(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// RegisterProfileServiceServer регистрирует реализацию сервиса на gRPC сервере.
func RegisterProfileServiceServer(s grpc.ServiceRegistrar, srv ProfileServiceServer) {
	s.RegisterService(&profileServiceDesc, srv)
}

var profileServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ProfileServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: MethodGetUserProfile,
			Handler:    getUserProfileHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "profile/v1/profile.proto",
}

func getUserProfileHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProfileServiceServer).GetUserProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FullMethodGetProfile,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ProfileServiceServer).GetUserProfile(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}
