// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: pb/sync.proto

package pb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	SyncAPI_LoadAll_FullMethodName         = "/shopsync.SyncAPI/LoadAll"
	SyncAPI_AdjustInventory_FullMethodName = "/shopsync.SyncAPI/AdjustInventory"
	SyncAPI_AddToCart_FullMethodName       = "/shopsync.SyncAPI/AddToCart"
	SyncAPI_DeleteFromCart_FullMethodName  = "/shopsync.SyncAPI/DeleteFromCart"
	SyncAPI_Checkout_FullMethodName        = "/shopsync.SyncAPI/Checkout"
	SyncAPI_GetState_FullMethodName        = "/shopsync.SyncAPI/GetState"
)

// SyncAPIClient is the client API for SyncAPI service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type SyncAPIClient interface {
	LoadAll(ctx context.Context, in *LoadAllRequest, opts ...grpc.CallOption) (*OpResponse, error)
	AdjustInventory(ctx context.Context, in *AdjustInventoryRequest, opts ...grpc.CallOption) (*OpResponse, error)
	AddToCart(ctx context.Context, in *AddToCartRequest, opts ...grpc.CallOption) (*OpResponse, error)
	DeleteFromCart(ctx context.Context, in *DeleteFromCartRequest, opts ...grpc.CallOption) (*OpResponse, error)
	Checkout(ctx context.Context, in *CheckoutRequest, opts ...grpc.CallOption) (*OpResponse, error)
	GetState(ctx context.Context, in *GetStateRequest, opts ...grpc.CallOption) (*StateResponse, error)
}

type syncAPIClient struct {
	cc grpc.ClientConnInterface
}

func NewSyncAPIClient(cc grpc.ClientConnInterface) SyncAPIClient {
	return &syncAPIClient{cc}
}

func (c *syncAPIClient) LoadAll(ctx context.Context, in *LoadAllRequest, opts ...grpc.CallOption) (*OpResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(OpResponse)
	err := c.cc.Invoke(ctx, SyncAPI_LoadAll_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syncAPIClient) AdjustInventory(ctx context.Context, in *AdjustInventoryRequest, opts ...grpc.CallOption) (*OpResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(OpResponse)
	err := c.cc.Invoke(ctx, SyncAPI_AdjustInventory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syncAPIClient) AddToCart(ctx context.Context, in *AddToCartRequest, opts ...grpc.CallOption) (*OpResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(OpResponse)
	err := c.cc.Invoke(ctx, SyncAPI_AddToCart_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syncAPIClient) DeleteFromCart(ctx context.Context, in *DeleteFromCartRequest, opts ...grpc.CallOption) (*OpResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(OpResponse)
	err := c.cc.Invoke(ctx, SyncAPI_DeleteFromCart_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syncAPIClient) Checkout(ctx context.Context, in *CheckoutRequest, opts ...grpc.CallOption) (*OpResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(OpResponse)
	err := c.cc.Invoke(ctx, SyncAPI_Checkout_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syncAPIClient) GetState(ctx context.Context, in *GetStateRequest, opts ...grpc.CallOption) (*StateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StateResponse)
	err := c.cc.Invoke(ctx, SyncAPI_GetState_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SyncAPIServer is the server API for SyncAPI service.
// All implementations must embed UnimplementedSyncAPIServer
// for forward compatibility.
type SyncAPIServer interface {
	LoadAll(context.Context, *LoadAllRequest) (*OpResponse, error)
	AdjustInventory(context.Context, *AdjustInventoryRequest) (*OpResponse, error)
	AddToCart(context.Context, *AddToCartRequest) (*OpResponse, error)
	DeleteFromCart(context.Context, *DeleteFromCartRequest) (*OpResponse, error)
	Checkout(context.Context, *CheckoutRequest) (*OpResponse, error)
	GetState(context.Context, *GetStateRequest) (*StateResponse, error)
	mustEmbedUnimplementedSyncAPIServer()
}

// UnimplementedSyncAPIServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSyncAPIServer struct{}

func (UnimplementedSyncAPIServer) LoadAll(context.Context, *LoadAllRequest) (*OpResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method LoadAll not implemented")
}
func (UnimplementedSyncAPIServer) AdjustInventory(context.Context, *AdjustInventoryRequest) (*OpResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AdjustInventory not implemented")
}
func (UnimplementedSyncAPIServer) AddToCart(context.Context, *AddToCartRequest) (*OpResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddToCart not implemented")
}
func (UnimplementedSyncAPIServer) DeleteFromCart(context.Context, *DeleteFromCartRequest) (*OpResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteFromCart not implemented")
}
func (UnimplementedSyncAPIServer) Checkout(context.Context, *CheckoutRequest) (*OpResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Checkout not implemented")
}
func (UnimplementedSyncAPIServer) GetState(context.Context, *GetStateRequest) (*StateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetState not implemented")
}
func (UnimplementedSyncAPIServer) mustEmbedUnimplementedSyncAPIServer() {}
func (UnimplementedSyncAPIServer) testEmbeddedByValue()                 {}

// UnsafeSyncAPIServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SyncAPIServer will
// result in compilation errors.
type UnsafeSyncAPIServer interface {
	mustEmbedUnimplementedSyncAPIServer()
}

func RegisterSyncAPIServer(s grpc.ServiceRegistrar, srv SyncAPIServer) {
	// If the following call pancis, it indicates UnimplementedSyncAPIServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SyncAPI_ServiceDesc, srv)
}

func _SyncAPI_LoadAll_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LoadAllRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncAPIServer).LoadAll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyncAPI_LoadAll_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncAPIServer).LoadAll(ctx, req.(*LoadAllRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyncAPI_AdjustInventory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AdjustInventoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncAPIServer).AdjustInventory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyncAPI_AdjustInventory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncAPIServer).AdjustInventory(ctx, req.(*AdjustInventoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyncAPI_AddToCart_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddToCartRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncAPIServer).AddToCart(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyncAPI_AddToCart_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncAPIServer).AddToCart(ctx, req.(*AddToCartRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyncAPI_DeleteFromCart_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteFromCartRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncAPIServer).DeleteFromCart(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyncAPI_DeleteFromCart_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncAPIServer).DeleteFromCart(ctx, req.(*DeleteFromCartRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyncAPI_Checkout_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckoutRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncAPIServer).Checkout(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyncAPI_Checkout_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncAPIServer).Checkout(ctx, req.(*CheckoutRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyncAPI_GetState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncAPIServer).GetState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyncAPI_GetState_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncAPIServer).GetState(ctx, req.(*GetStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SyncAPI_ServiceDesc is the grpc.ServiceDesc for SyncAPI service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SyncAPI_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "shopsync.SyncAPI",
	HandlerType: (*SyncAPIServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "LoadAll",
			Handler:    _SyncAPI_LoadAll_Handler,
		},
		{
			MethodName: "AdjustInventory",
			Handler:    _SyncAPI_AdjustInventory_Handler,
		},
		{
			MethodName: "AddToCart",
			Handler:    _SyncAPI_AddToCart_Handler,
		},
		{
			MethodName: "DeleteFromCart",
			Handler:    _SyncAPI_DeleteFromCart_Handler,
		},
		{
			MethodName: "Checkout",
			Handler:    _SyncAPI_Checkout_Handler,
		},
		{
			MethodName: "GetState",
			Handler:    _SyncAPI_GetState_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pb/sync.proto",
}
