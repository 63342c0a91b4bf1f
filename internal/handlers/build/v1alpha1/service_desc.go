// Package v1alpha1 exposes the character build service over gRPC.
//
// Messages are google.protobuf.Struct values holding the JSON form of the
// request and response types in this package, so the service needs no
// generated code beyond the well-known types.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "grimoire.build.v1alpha1.BuildService"

// Method names
const (
	MethodCreateCharacter         = "CreateCharacter"
	MethodGetCharacter            = "GetCharacter"
	MethodListCharacters          = "ListCharacters"
	MethodDeleteCharacter         = "DeleteCharacter"
	MethodUpdateCharacter         = "UpdateCharacter"
	MethodToggleCastingSkill      = "ToggleCastingSkill"
	MethodToggleExpertise         = "ToggleExpertise"
	MethodSetLevel                = "SetLevel"
	MethodSetLevel1Choice         = "SetLevel1Choice"
	MethodUnlockLevel1            = "UnlockLevel1"
	MethodSetMilestone            = "SetMilestone"
	MethodGetBuildSheet           = "GetBuildSheet"
	MethodRollHitPoints           = "RollHitPoints"
	MethodCommitBuild             = "CommitBuild"
	MethodResolveSkills           = "ResolveSkills"
	MethodResolveAbilityModifiers = "ResolveAbilityModifiers"
	MethodResolveProgression      = "ResolveProgression"
	MethodValidateBuild           = "ValidateBuild"
	MethodComputeHitPoints        = "ComputeHitPoints"
)

// FullMethod returns the gRPC path for a method name
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// BuildServiceServer is the server API for the build service
type BuildServiceServer interface {
	CreateCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCharacters(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ToggleCastingSkill(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ToggleExpertise(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetLevel(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetLevel1Choice(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UnlockLevel1(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetMilestone(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetBuildSheet(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RollHitPoints(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CommitBuild(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResolveSkills(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResolveAbilityModifiers(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResolveProgression(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ValidateBuild(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ComputeHitPoints(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(BuildServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unary(method string, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(
			srv interface{},
			ctx context.Context,
			dec func(interface{}) error,
			interceptor grpc.UnaryServerInterceptor,
		) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(BuildServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(method),
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(BuildServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// BuildServiceDesc is the grpc.ServiceDesc for the build service
var BuildServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BuildServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodCreateCharacter, BuildServiceServer.CreateCharacter),
		unary(MethodGetCharacter, BuildServiceServer.GetCharacter),
		unary(MethodListCharacters, BuildServiceServer.ListCharacters),
		unary(MethodDeleteCharacter, BuildServiceServer.DeleteCharacter),
		unary(MethodUpdateCharacter, BuildServiceServer.UpdateCharacter),
		unary(MethodToggleCastingSkill, BuildServiceServer.ToggleCastingSkill),
		unary(MethodToggleExpertise, BuildServiceServer.ToggleExpertise),
		unary(MethodSetLevel, BuildServiceServer.SetLevel),
		unary(MethodSetLevel1Choice, BuildServiceServer.SetLevel1Choice),
		unary(MethodUnlockLevel1, BuildServiceServer.UnlockLevel1),
		unary(MethodSetMilestone, BuildServiceServer.SetMilestone),
		unary(MethodGetBuildSheet, BuildServiceServer.GetBuildSheet),
		unary(MethodRollHitPoints, BuildServiceServer.RollHitPoints),
		unary(MethodCommitBuild, BuildServiceServer.CommitBuild),
		unary(MethodResolveSkills, BuildServiceServer.ResolveSkills),
		unary(MethodResolveAbilityModifiers, BuildServiceServer.ResolveAbilityModifiers),
		unary(MethodResolveProgression, BuildServiceServer.ResolveProgression),
		unary(MethodValidateBuild, BuildServiceServer.ValidateBuild),
		unary(MethodComputeHitPoints, BuildServiceServer.ComputeHitPoints),
	},
	Streams:     []grpc.StreamDesc{},
}

// RegisterBuildServiceServer registers the build service on a gRPC server
func RegisterBuildServiceServer(s grpc.ServiceRegistrar, srv BuildServiceServer) {
	s.RegisterService(&BuildServiceDesc, srv)
}
