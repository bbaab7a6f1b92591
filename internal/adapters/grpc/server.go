package grpc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/viralforge/fantasymanager/internal/application"
	"github.com/viralforge/fantasymanager/internal/contracts"
	"github.com/viralforge/fantasymanager/internal/domain"
)

const serviceName = "fantasymanager.fteams.v1.FantasyTeamInternalService"

type FantasyTeamInternalService interface {
	GetFantasyTeam(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListMatchFantasyTeams(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type FantasyTeamInternalServer struct {
	service *application.Service
}

func NewFantasyTeamInternalServer(service *application.Service) *FantasyTeamInternalServer {
	return &FantasyTeamInternalServer{service: service}
}

func Register(server grpc.ServiceRegistrar, svc FantasyTeamInternalService) {
	server.RegisterService(&grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*FantasyTeamInternalService)(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: "GetFantasyTeam",
				Handler:    unaryHandler("GetFantasyTeam", svc.GetFantasyTeam),
			},
			{
				MethodName: "ListMatchFantasyTeams",
				Handler:    unaryHandler("ListMatchFantasyTeams", svc.ListMatchFantasyTeams),
			},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "fantasymanager/fteams/v1/fteams_internal.proto",
	}, svc)
}

func (s *FantasyTeamInternalServer) GetFantasyTeam(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	detail := true
	if v, ok := req.GetFields()["detail"]; ok {
		detail = v.GetBoolValue()
	}
	team, err := s.service.GetFantasyTeam(ctx, application.TeamRef{
		UserID:        stringField(req, "user_id"),
		MatchID:       stringField(req, "match_id"),
		FantasyTeamID: stringField(req, "fantasy_team_id"),
	}, detail)
	if err != nil {
		return nil, statusFromError(ctx, "GetFantasyTeam", err)
	}
	return toStruct(team)
}

func (s *FantasyTeamInternalServer) ListMatchFantasyTeams(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	opts, err := listOptions(req)
	if err != nil {
		return nil, statusFromError(ctx, "ListMatchFantasyTeams", err)
	}
	res, err := s.service.ListMatchFantasyTeams(ctx, stringField(req, "match_id"), opts)
	if err != nil {
		return nil, statusFromError(ctx, "ListMatchFantasyTeams", err)
	}
	return toStruct(contracts.FantasyTeamListResponse{FantasyTeams: res.Teams})
}

// listOptions applies the same limit and offset rules as the HTTP query
// binder. Absent fields keep their defaults.
func listOptions(req *structpb.Struct) (application.ListOptions, error) {
	var opts application.ListOptions
	limit, ok, err := intField(req, application.ParamLimit)
	if err != nil {
		return application.ListOptions{}, err
	}
	if ok {
		if err := application.ValidateLimit(limit); err != nil {
			return application.ListOptions{}, err
		}
		opts.Limit = limit
	}
	offset, ok, err := intField(req, application.ParamOffset)
	if err != nil {
		return application.ListOptions{}, err
	}
	if ok {
		if err := application.ValidateOffset(offset); err != nil {
			return application.ListOptions{}, err
		}
		opts.Offset = offset
	}
	return opts, nil
}

// statusFromError maps application errors onto gRPC codes. Unclassified
// failures are logged and reported as a generic Internal status.
func statusFromError(ctx context.Context, method string, err error) error {
	appErr, ok := domain.AsApplicationError(err)
	if !ok {
		slog.Default().ErrorContext(ctx, "grpc operation failed",
			"service", serviceName,
			"module", "grpc",
			"layer", "adapter",
			"operation", method,
			"outcome", "failure",
			"error", fmt.Sprint(err),
		)
		return status.Error(codes.Internal, "An unexpected error occurred")
	}
	var c codes.Code
	switch appErr.StatusCode() {
	case http.StatusUnprocessableEntity:
		c = codes.InvalidArgument
	case http.StatusNotFound:
		c = codes.NotFound
	case http.StatusConflict:
		c = codes.AlreadyExists
	case http.StatusUnauthorized:
		c = codes.Unauthenticated
	case http.StatusForbidden:
		c = codes.PermissionDenied
	default:
		c = codes.Internal
	}
	return status.Error(c, appErr.Message())
}

func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

// intField reads an optional whole-number field. ok is false when the field
// is absent or null.
func intField(req *structpb.Struct, name string) (n int, ok bool, err error) {
	v, present := req.GetFields()[name]
	if !present {
		return 0, false, nil
	}
	if _, isNull := v.GetKind().(*structpb.Value_NullValue); isNull {
		return 0, false, nil
	}
	num, isNumber := v.GetKind().(*structpb.Value_NumberValue)
	if !isNumber || num.NumberValue != math.Trunc(num.NumberValue) ||
		num.NumberValue > math.MaxInt32 || num.NumberValue < math.MinInt32 {
		return 0, false, application.NotAnInteger(name, v.AsInterface())
	}
	return int(num.NumberValue), true, nil
}

func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "build response: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, status.Errorf(codes.Internal, "build response: %v", err)
	}
	resp, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "build response: %v", err)
	}
	return resp, nil
}

func unaryHandler(method string, call func(context.Context, *structpb.Struct) (*structpb.Struct, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		req := &structpb.Struct{}
		if err := dec(req); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(ctx, req)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/" + serviceName + "/" + method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			typed, ok := req.(*structpb.Struct)
			if !ok {
				return nil, status.Error(codes.InvalidArgument, "invalid request type")
			}
			return call(ctx, typed)
		}
		return interceptor(ctx, req, info, handler)
	}
}
