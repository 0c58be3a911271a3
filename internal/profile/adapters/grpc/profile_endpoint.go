package grpc

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"profilefetch/internal/profile/domain/entities"
	"profilefetch/internal/profile/ports/services"
	"profilefetch/pkg/logger"
)

// Константы для логирования.
const (
	LogMethodFetchProfile = "grpc.FetchProfile"
	LogMethodClose        = "grpc.Close"

	MetadataAuthorization = "authorization"
	MetadataRequestID     = "x-request-id"

	msgProfileResponse = "profile service responded"

	ErrorFailedToCreateClient = "failed to create profile service client"
	ErrorFailedToIssueToken   = "failed to issue service token"
	ErrorFailedToBuildRequest = "failed to build profile request"
	ErrorTransport            = "profile service transport failure"
	ErrorFailedToClose        = "failed to close profile service connection"
)

// Client реализует endpoint.ProfileEndpoint поверх gRPC.
type Client struct {
	conn   *grpc.ClientConn
	tokens services.TokenService
}

// NewProfileEndpoint создает клиент. Соединение устанавливается лениво при первом вызове.
// Дополнительные опции передаются в grpc.NewClient после insecure credentials.
func NewProfileEndpoint(address string, tokens services.TokenService, opts ...grpc.DialOption) (*Client, error) {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)

	conn, err := grpc.NewClient(address, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedToCreateClient, err)
	}

	return &Client{conn: conn, tokens: tokens}, nil
}

// FetchProfile вызывает GetUserProfile и переводит gRPC код в entities.EndpointStatus.
func (c *Client) FetchProfile(ctx context.Context, userID string) (entities.EndpointResult, error) {
	log := logger.Log(ctx).With(zap.String("method", LogMethodFetchProfile), zap.String("userID", userID))

	token, err := c.tokens.ServiceToken(ctx)
	if err != nil {
		log.Error(ctx, ErrorFailedToIssueToken, zap.Error(err))
		return entities.EndpointResult{}, fmt.Errorf("%s: %w", ErrorFailedToIssueToken, err)
	}

	req, err := structpb.NewStruct(map[string]any{FieldUserID: userID})
	if err != nil {
		return entities.EndpointResult{}, fmt.Errorf("%s: %w", ErrorFailedToBuildRequest, err)
	}

	md := metadata.Pairs(MetadataAuthorization, "Bearer "+token)
	if requestID, ok := logger.GetRequestID(ctx); ok {
		md.Append(MetadataRequestID, requestID)
	}
	callCtx := metadata.NewOutgoingContext(ctx, md)

	resp := new(structpb.Struct)
	if err := c.conn.Invoke(callCtx, FullMethodGetProfile, req, resp); err != nil {
		st, ok := status.FromError(err)
		if !ok || IsNetworkCode(st.Code()) {
			log.Warn(ctx, ErrorTransport, zap.Error(err))
			return entities.EndpointResult{}, entities.NewNetworkError(FullMethodGetProfile, err)
		}
		endpointStatus := StatusFromCode(st.Code())
		log.Debug(ctx, msgProfileResponse,
			zap.Stringer("code", st.Code()),
			zap.Stringer("endpoint_status", endpointStatus))
		return entities.EndpointResult{Status: endpointStatus}, nil
	}

	log.Debug(ctx, msgProfileResponse, zap.Stringer("code", codes.OK))

	fields := resp.GetFields()
	return entities.EndpointResult{
		Status: entities.StatusSuccess,
		Profile: entities.UserProfile{
			ID:       fields[FieldID].GetStringValue(),
			FullName: fields[FieldFullName].GetStringValue(),
			ImageURL: fields[FieldImageURL].GetStringValue(),
		},
	}, nil
}

// Close закрывает соединение с сервисом профилей.
func (c *Client) Close() error {
	if err := c.conn.Close(); err != nil {
		logger.Log(context.Background()).Error(context.Background(), ErrorFailedToClose,
			zap.String("method", LogMethodClose), zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToClose, err)
	}
	return nil
}

// IsNetworkCode сообщает, относится ли код к сбою транспорта.
func IsNetworkCode(code codes.Code) bool {
	switch code {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return true
	default:
		return false
	}
}

// StatusFromCode переводит gRPC код ответа в статус сервиса профилей.
// Коды сетевых сбоев должны быть отфильтрованы через IsNetworkCode заранее.
func StatusFromCode(code codes.Code) entities.EndpointStatus {
	switch code {
	case codes.OK:
		return entities.StatusSuccess
	case codes.Unauthenticated, codes.PermissionDenied:
		return entities.StatusAuthError
	case codes.Internal, codes.Unknown, codes.DataLoss, codes.Unimplemented:
		return entities.StatusServerError
	default:
		return entities.StatusGeneralError
	}
}
