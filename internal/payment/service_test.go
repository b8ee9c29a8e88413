package payment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pantrypay/internal/payment"
	"pantrypay/internal/razorpay"
)

func TestService_IssueOrder(t *testing.T) {
	type args struct {
		params payment.IssueParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(repo *payment.MockRepository, gw *payment.MockGateway)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: payment.IssueParams{
					UserID:   "user-1",
					Amount:   50000,
					Currency: "inr",
					Receipt:  "rcpt_1",
				},
			},
			setupMock: func(repo *payment.MockRepository, gw *payment.MockGateway) {
				gw.EXPECT().
					CreateOrder(gomock.Any(), int64(50000), "INR", "rcpt_1").
					Return(&razorpay.Order{
						ID:       "order_abc",
						Amount:   50000,
						Currency: "INR",
						Status:   "created",
					}, nil)
				repo.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, o *payment.Order) error {
						assert.Equal(t, "order_abc", o.GatewayOrderID)
						assert.Equal(t, "user-1", o.UserID)
						assert.Equal(t, payment.OrderStatusCreated, o.Status)
						return nil
					})
			},
		},
		{
			name: "ZeroAmount",
			args: args{
				params: payment.IssueParams{UserID: "user-1", Amount: 0, Currency: "INR", Receipt: "r"},
			},
			wantErr: payment.ErrInvalidAmount,
		},
		{
			name: "NegativeAmount",
			args: args{
				params: payment.IssueParams{UserID: "user-1", Amount: -100, Currency: "INR", Receipt: "r"},
			},
			wantErr: payment.ErrInvalidAmount,
		},
		{
			name: "BadCurrency",
			args: args{
				params: payment.IssueParams{UserID: "user-1", Amount: 100, Currency: "XXXX", Receipt: "r"},
			},
			wantErr: payment.ErrInvalidCurrency,
		},
		{
			name: "MissingReceipt",
			args: args{
				params: payment.IssueParams{UserID: "user-1", Amount: 100, Currency: "INR", Receipt: "  "},
			},
			wantErr: payment.ErrInvalidInput,
		},
		{
			name: "GatewayDown",
			args: args{
				params: payment.IssueParams{UserID: "user-1", Amount: 100, Currency: "INR", Receipt: "r"},
			},
			setupMock: func(repo *payment.MockRepository, gw *payment.MockGateway) {
				gw.EXPECT().
					CreateOrder(gomock.Any(), int64(100), "INR", "r").
					Return(nil, razorpay.ErrUnavailable)
			},
			wantErr: razorpay.ErrUnavailable,
		},
		{
			name: "PersistFailsAfterGatewaySuccess",
			args: args{
				params: payment.IssueParams{UserID: "user-1", Amount: 100, Currency: "INR", Receipt: "r"},
			},
			setupMock: func(repo *payment.MockRepository, gw *payment.MockGateway) {
				gw.EXPECT().
					CreateOrder(gomock.Any(), int64(100), "INR", "r").
					Return(&razorpay.Order{ID: "order_orphan", Amount: 100, Currency: "INR"}, nil)
				repo.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					Return(errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := payment.NewMockRepository(ctrl)
			gw := payment.NewMockGateway(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo, gw)
			}

			svc := payment.NewService(repo, gw)
			got, err := svc.IssueOrder(context.Background(), tt.args.params)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, got)
				if errors.Is(tt.wantErr, payment.ErrInvalidAmount) ||
					errors.Is(tt.wantErr, payment.ErrInvalidCurrency) ||
					errors.Is(tt.wantErr, payment.ErrInvalidInput) ||
					errors.Is(tt.wantErr, razorpay.ErrUnavailable) {
					assert.ErrorIs(t, err, tt.wantErr)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "order_abc", got.ID)
		})
	}
}

func TestService_VerifyPayment(t *testing.T) {
	validParams := payment.VerifyParams{
		UserID:           "user-1",
		GatewayOrderID:   "order_abc",
		GatewayPaymentID: "pay_123",
		Signature:        "sig",
	}

	storedOrder := &payment.Order{
		GatewayOrderID: "order_abc",
		UserID:         "user-1",
		Amount:         50000,
		Currency:       "INR",
		Status:         payment.OrderStatusCreated,
	}

	t.Run("ValidSignatureCompletesOrder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := payment.NewMockRepository(ctrl)
		gw := payment.NewMockGateway(ctrl)

		gw.EXPECT().VerifySignature("order_abc", "pay_123", "sig").Return(true)
		repo.EXPECT().
			GetOrderForUser(gomock.Any(), "order_abc", "user-1").
			Return(storedOrder, nil)
		repo.EXPECT().
			CompleteOrder(gomock.Any(), "order_abc", "user-1", "pay_123", "sig", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, paymentID, signature string, completedAt time.Time) (*payment.Order, error) {
				completed := *storedOrder
				completed.Status = payment.OrderStatusCompleted
				completed.GatewayPaymentID = &paymentID
				completed.Signature = &signature
				completed.CompletedAt = &completedAt
				return &completed, nil
			})
		repo.EXPECT().
			CreatePayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *payment.Payment) error {
				// Amount and currency come from the stored order, never
				// from the request.
				assert.Equal(t, int64(50000), p.Amount)
				assert.Equal(t, "INR", p.Currency)
				assert.Equal(t, payment.PaymentStatusCaptured, p.Status)
				return nil
			})

		svc := payment.NewService(repo, gw)
		got, err := svc.VerifyPayment(context.Background(), validParams)

		require.NoError(t, err)
		assert.True(t, got.Verified)
	})

	t.Run("BadSignatureMutatesNothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := payment.NewMockRepository(ctrl)
		gw := payment.NewMockGateway(ctrl)

		gw.EXPECT().VerifySignature("order_abc", "pay_123", "sig").Return(false)
		// No repository expectations: a mismatch must not touch storage.

		svc := payment.NewService(repo, gw)
		got, err := svc.VerifyPayment(context.Background(), validParams)

		require.NoError(t, err)
		assert.False(t, got.Verified)
	})

	t.Run("OtherUsersOrderIsNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := payment.NewMockRepository(ctrl)
		gw := payment.NewMockGateway(ctrl)

		gw.EXPECT().VerifySignature("order_abc", "pay_123", "sig").Return(true)
		repo.EXPECT().
			GetOrderForUser(gomock.Any(), "order_abc", "user-1").
			Return(nil, payment.ErrOrderNotFound)

		svc := payment.NewService(repo, gw)
		got, err := svc.VerifyPayment(context.Background(), validParams)

		assert.ErrorIs(t, err, payment.ErrOrderNotFound)
		assert.Nil(t, got)
	})

	t.Run("ReceiptInsertFailureStillVerified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := payment.NewMockRepository(ctrl)
		gw := payment.NewMockGateway(ctrl)

		gw.EXPECT().VerifySignature("order_abc", "pay_123", "sig").Return(true)
		repo.EXPECT().
			GetOrderForUser(gomock.Any(), "order_abc", "user-1").
			Return(storedOrder, nil)
		repo.EXPECT().
			CompleteOrder(gomock.Any(), "order_abc", "user-1", "pay_123", "sig", gomock.Any()).
			Return(storedOrder, nil)
		repo.EXPECT().
			CreatePayment(gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		svc := payment.NewService(repo, gw)
		got, err := svc.VerifyPayment(context.Background(), validParams)

		// The signature check is authoritative; the receipt row is
		// reconciling bookkeeping.
		require.NoError(t, err)
		assert.True(t, got.Verified)
	})

	t.Run("MissingFields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := payment.NewService(payment.NewMockRepository(ctrl), payment.NewMockGateway(ctrl))

		for _, params := range []payment.VerifyParams{
			{UserID: "u", GatewayPaymentID: "p", Signature: "s"},
			{UserID: "u", GatewayOrderID: "o", Signature: "s"},
			{UserID: "u", GatewayOrderID: "o", GatewayPaymentID: "p"},
		} {
			got, err := svc.VerifyPayment(context.Background(), params)
			assert.ErrorIs(t, err, payment.ErrInvalidInput)
			assert.Nil(t, got)
		}
	})
}

func TestService_InspectPayment(t *testing.T) {
	stored := &payment.Payment{
		GatewayPaymentID: "pay_123",
		GatewayOrderID:   "order_abc",
		UserID:           "user-1",
		Amount:           50000,
		Currency:         "INR",
		Status:           payment.PaymentStatusCaptured,
	}

	t.Run("MergesGatewayView", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := payment.NewMockRepository(ctrl)
		gw := payment.NewMockGateway(ctrl)

		repo.EXPECT().
			GetPaymentForUser(gomock.Any(), "pay_123", "user-1").
			Return(stored, nil)
		gw.EXPECT().
			FetchPayment(gomock.Any(), "pay_123").
			Return(&razorpay.Payment{ID: "pay_123", Status: "captured", Method: "upi"}, nil)

		svc := payment.NewService(repo, gw)
		got, err := svc.InspectPayment(context.Background(), "user-1", "pay_123")

		require.NoError(t, err)
		assert.Equal(t, stored, got.Payment)
		assert.Equal(t, "upi", got.Gateway.Method)
	})

	t.Run("NotFoundForNonOwner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := payment.NewMockRepository(ctrl)
		gw := payment.NewMockGateway(ctrl)

		// The store query is scoped by user id, so an existing payment
		// owned by someone else surfaces exactly like a missing one.
		repo.EXPECT().
			GetPaymentForUser(gomock.Any(), "pay_123", "intruder").
			Return(nil, payment.ErrPaymentNotFound)

		svc := payment.NewService(repo, gw)
		got, err := svc.InspectPayment(context.Background(), "intruder", "pay_123")

		assert.ErrorIs(t, err, payment.ErrPaymentNotFound)
		assert.Nil(t, got)
	})

	t.Run("GatewayDownAfterLocalHit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := payment.NewMockRepository(ctrl)
		gw := payment.NewMockGateway(ctrl)

		repo.EXPECT().
			GetPaymentForUser(gomock.Any(), "pay_123", "user-1").
			Return(stored, nil)
		gw.EXPECT().
			FetchPayment(gomock.Any(), "pay_123").
			Return(nil, razorpay.ErrUnavailable)

		svc := payment.NewService(repo, gw)
		got, err := svc.InspectPayment(context.Background(), "user-1", "pay_123")

		assert.ErrorIs(t, err, razorpay.ErrUnavailable)
		assert.Nil(t, got)
	})

	t.Run("MissingPaymentID", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := payment.NewService(payment.NewMockRepository(ctrl), payment.NewMockGateway(ctrl))

		got, err := svc.InspectPayment(context.Background(), "user-1", "")
		assert.ErrorIs(t, err, payment.ErrInvalidInput)
		assert.Nil(t, got)
	})
}
