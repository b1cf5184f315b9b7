package grpc

import (
	"context"

	"github.com/DRSN-tech/retail-core/internal/report"
	"github.com/DRSN-tech/retail-core/internal/usecase"
	"github.com/DRSN-tech/retail-core/pkg/e"
	"github.com/DRSN-tech/retail-core/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ReportServiceName      = "retail.v1.ReportService"
	GetDashboardMethod     = "/" + ReportServiceName + "/GetDashboard"
	GetSaleByInvoiceMethod = "/" + ReportServiceName + "/GetSaleByInvoice"
)

// ReportServiceServer отдаёт read-only отчёты по текущему снимку.
// Запросы и ответы передаются как google.protobuf.Struct.
type ReportServiceServer interface {
	// GetDashboard принимает {"top": n} и возвращает агрегаты дашборда.
	GetDashboard(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	// GetSaleByInvoice принимает {"invoiceNumber": "INV-1001"}.
	GetSaleByInvoice(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
}

var ReportServiceDesc = grpc.ServiceDesc{
	ServiceName: ReportServiceName,
	HandlerType: (*ReportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetDashboard", Handler: unaryHandler(GetDashboardMethod, ReportServiceServer.GetDashboard)},
		{MethodName: "GetSaleByInvoice", Handler: unaryHandler(GetSaleByInvoiceMethod, ReportServiceServer.GetSaleByInvoice)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "retail/v1/report.proto",
}

func unaryHandler(
	fullMethod string,
	call func(ReportServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ReportServiceServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ReportServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

type ReportService struct {
	storeUC usecase.StoreUC
	logger  logger.Logger
}

func NewReportService(storeUC usecase.StoreUC, logger logger.Logger) *ReportService {
	return &ReportService{storeUC: storeUC, logger: logger}
}

func (g *ReportService) GetDashboard(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	const op = "grpc.GetDashboard"

	top, err := intField(in, "top", report.DefaultTopN)
	if err != nil {
		g.logger.Warnf("%s: %s", op, err.Error())
		return nil, GRPCErrorResponse(err)
	}

	out, err := toStruct(report.BuildDashboard(g.storeUC.Snapshot(), top))
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	return out, nil
}

func (g *ReportService) GetSaleByInvoice(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	const op = "grpc.GetSaleByInvoice"

	sale, err := g.storeUC.FindSale(in.GetFields()["invoiceNumber"].GetStringValue())
	if err != nil {
		g.logger.Warnf("%s: %s", op, err.Error())
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	out, err := toStruct(sale)
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	return out, nil
}

// ReportClient вызывает ReportService без сгенерированного кода.
type ReportClient struct {
	cc grpc.ClientConnInterface
}

func NewReportClient(cc grpc.ClientConnInterface) *ReportClient {
	return &ReportClient{cc: cc}
}

func (c *ReportClient) GetDashboard(ctx context.Context, top int, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(map[string]any{"top": top})
	if err != nil {
		return nil, err
	}

	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetDashboardMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ReportClient) GetSaleByInvoice(ctx context.Context, invoiceNumber string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(map[string]any{"invoiceNumber": invoiceNumber})
	if err != nil {
		return nil, err
	}

	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetSaleByInvoiceMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
