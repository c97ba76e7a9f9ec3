package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	serviceName              = "enrollment.v1.PaymentsService"
	getStatementFullMethod   = "/" + serviceName + "/GetStatement"
	classifyReturnFullMethod = "/" + serviceName + "/ClassifyReturn"
)

// PaymentsServiceServer exchanges google.protobuf.Struct messages whose
// fields mirror the HTTP JSON bodies.
type PaymentsServiceServer interface {
	GetStatement(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ClassifyReturn(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

var PaymentsServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*PaymentsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetStatement", Handler: getStatementHandler},
		{MethodName: "ClassifyReturn", Handler: classifyReturnHandler},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterPaymentsServiceServer(registrar grpc.ServiceRegistrar, srv PaymentsServiceServer) {
	registrar.RegisterService(&PaymentsServiceDesc, srv)
}

func getStatementHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PaymentsServiceServer).GetStatement(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: getStatementFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PaymentsServiceServer).GetStatement(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func classifyReturnHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PaymentsServiceServer).ClassifyReturn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: classifyReturnFullMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PaymentsServiceServer).ClassifyReturn(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// PaymentsServiceClient calls PaymentsService over an existing connection.
type PaymentsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPaymentsServiceClient(cc grpc.ClientConnInterface) *PaymentsServiceClient {
	return &PaymentsServiceClient{cc: cc}
}

func (c *PaymentsServiceClient) GetStatement(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, getStatementFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *PaymentsServiceClient) ClassifyReturn(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, classifyReturnFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
