package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/DRSN-tech/retail-core/internal/cfg"
	"github.com/DRSN-tech/retail-core/internal/domain"
	"github.com/DRSN-tech/retail-core/internal/repository/memory"
	"github.com/DRSN-tech/retail-core/internal/usecase"
	"github.com/DRSN-tech/retail-core/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
)

func newTestClient(t *testing.T) (*ReportClient, *usecase.Store) {
	t.Helper()

	store, err := usecase.NewStore(context.Background(), memory.NewSnapshotRepo())
	require.NoError(t, err)

	srv := NewGRPCServer(&cfg.GRPCConfig{}, logger.Nop{})
	srv.RegisterServices(store)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(func() { _ = srv.Stop(context.Background()) })

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewReportClient(conn), store
}

func recordCoffeeSale(t *testing.T, store *usecase.Store) domain.Sale {
	t.Helper()

	items := []domain.SaleItem{{ProductID: "1", Quantity: 3, Price: decimal.NewFromInt(600)}}
	q, err := store.QuoteSale(items, decimal.Zero)
	require.NoError(t, err)

	sale, err := store.RecordSale(context.Background(), usecase.NewSaleRequest("", "", items, q, domain.PaymentCash))
	require.NoError(t, err)
	return sale
}

func TestGetDashboard(t *testing.T) {
	client, store := newTestClient(t)
	recordCoffeeSale(t, store)

	out, err := client.GetDashboard(context.Background(), 1)
	require.NoError(t, err)

	fields := out.AsMap()
	assert.Equal(t, "1890", fields["totalSales"])
	assert.Equal(t, "450", fields["totalProfit"])
	assert.Equal(t, float64(1), fields["salesCount"])
	assert.Len(t, fields["bestSellers"], 1)
}

func TestGetDashboard_InvalidTop(t *testing.T) {
	client, _ := newTestClient(t)

	in, err := structpb.NewStruct(map[string]any{"top": "many"})
	require.NoError(t, err)

	err = client.cc.Invoke(context.Background(), GetDashboardMethod, in, new(structpb.Struct))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetSaleByInvoice(t *testing.T) {
	client, store := newTestClient(t)
	sale := recordCoffeeSale(t, store)

	out, err := client.GetSaleByInvoice(context.Background(), sale.InvoiceNumber)
	require.NoError(t, err)
	assert.Equal(t, "INV-1001", out.AsMap()["invoiceNumber"])
	assert.Equal(t, "Guest", out.AsMap()["customerName"])

	_, err = client.GetSaleByInvoice(context.Background(), "INV-4242")
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestIntField(t *testing.T) {
	in, err := structpb.NewStruct(map[string]any{"top": 3, "bad": 2.5})
	require.NoError(t, err)

	n, err := intField(in, "top", 5)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = intField(in, "missing", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = intField(in, "bad", 5)
	assert.Error(t, err)
}
