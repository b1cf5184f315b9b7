package grpc

import (
	"encoding/json"
	"errors"

	"github.com/DRSN-tech/retail-core/pkg/e"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

func GRPCErrorResponse(err error) error {
	switch {
	case errors.Is(err, e.ErrSaleNotFound):
		return status.Error(codes.NotFound, e.ErrSaleNotFound.Error())
	case errors.Is(err, e.ErrProductNotFound):
		return status.Error(codes.NotFound, e.ErrProductNotFound.Error())
	case errors.Is(err, e.ErrInvalidInput), errors.Is(err, e.ErrStatusBadRequest):
		return status.Error(codes.InvalidArgument, e.ErrStatusBadRequest.Error())
	default:
		return status.Error(codes.Internal, e.ErrInternalServerError.Error())
	}
}

// toStruct переводит значение с json-тегами в google.protobuf.Struct.
// Денежные суммы остаются строками, как и в HTTP API.
func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, err
	}
	return out, nil
}

// intField читает неотрицательное целое из запроса или def, если поле не задано.
func intField(in *structpb.Struct, name string, def int) (int, error) {
	v, ok := in.GetFields()[name]
	if !ok {
		return def, nil
	}

	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok || n.NumberValue < 0 || n.NumberValue != float64(int(n.NumberValue)) {
		return 0, e.Wrap(name, e.ErrStatusBadRequest)
	}
	return int(n.NumberValue), nil
}
