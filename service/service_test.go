package service_test

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"salesdash/models"
	"salesdash/service"

	"salesdash/service/mocks"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestService_Login(t *testing.T) {
	type fields struct {
		prepareRepository func(*mocks.MockRepository)
	}
	type args struct {
		email    string
		password string
	}
	tests := []struct {
		name         string
		fields       fields
		args         args
		wantErr      bool
		wantUserID   int
		wantUsername string
	}{
		{
			name: "Existing user, correct password",
			fields: fields{
				prepareRepository: func(mr *mocks.MockRepository) {
					hashed, _ := bcrypt.GenerateFromPassword([]byte("pass"), bcrypt.DefaultCost)
					user := models.User{
						ID:       2,
						Username: "seller",
						Email:    "seller@example.com",
						Password: string(hashed),
					}
					mr.EXPECT().
						GetUserByEmail(gomock.Any(), "seller@example.com").
						Return(user, nil)
				},
			},
			args: args{
				email:    "seller@example.com",
				password: "pass",
			},
			wantErr:      false,
			wantUserID:   2,
			wantUsername: "seller",
		},
		{
			name: "Existing user, wrong password",
			fields: fields{
				prepareRepository: func(mr *mocks.MockRepository) {
					hashed, _ := bcrypt.GenerateFromPassword([]byte("pass"), bcrypt.DefaultCost)
					user := models.User{
						ID:       3,
						Username: "seller",
						Email:    "seller@example.com",
						Password: string(hashed),
					}
					mr.EXPECT().
						GetUserByEmail(gomock.Any(), "seller@example.com").
						Return(user, nil)
				},
			},
			args: args{
				email:    "seller@example.com",
				password: "wrongpass",
			},
			wantErr: true,
		},
		{
			name: "Unknown email",
			fields: fields{
				prepareRepository: func(mr *mocks.MockRepository) {
					mr.EXPECT().
						GetUserByEmail(gomock.Any(), "nobody@example.com").
						Return(models.User{}, sql.ErrNoRows)
				},
			},
			args: args{
				email:    "nobody@example.com",
				password: "pass",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ctx := context.Background()
			mockRepo := mocks.NewMockRepository(ctrl)
			tt.fields.prepareRepository(mockRepo)

			svc := service.NewService(mockRepo, "secret")
			token, err := svc.Login(ctx, tt.args.email, tt.args.password)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, token)

			parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
				return []byte("secret"), nil
			})
			require.NoError(t, err)
			claims, ok := parsed.Claims.(jwt.MapClaims)
			require.True(t, ok)
			userID := int(claims["user_id"].(float64))
			require.Equal(t, tt.wantUserID, userID)
			require.Equal(t, tt.wantUsername, claims["username"])
		})
	}
}

func TestService_Register(t *testing.T) {
	type fields struct {
		prepareRepository func(*mocks.MockRepository)
	}
	type args struct {
		username string
		email    string
		password string
	}
	tests := []struct {
		name       string
		fields     fields
		args       args
		wantErr    bool
		wantUserID int
	}{
		{
			name: "New user",
			fields: fields{
				prepareRepository: func(mr *mocks.MockRepository) {
					mr.EXPECT().
						GetUserByEmail(gomock.Any(), "new@example.com").
						Return(models.User{}, sql.ErrNoRows)
					mr.EXPECT().
						CreateUser(gomock.Any(), "newuser", "new@example.com", gomock.Any()).
						Return(5, nil)
				},
			},
			args: args{
				username: "newuser",
				email:    "new@example.com",
				password: "pass",
			},
			wantErr:    false,
			wantUserID: 5,
		},
		{
			name: "Duplicate email",
			fields: fields{
				prepareRepository: func(mr *mocks.MockRepository) {
					mr.EXPECT().
						GetUserByEmail(gomock.Any(), "taken@example.com").
						Return(models.User{ID: 1, Email: "taken@example.com"}, nil)
				},
			},
			args: args{
				username: "newuser",
				email:    "taken@example.com",
				password: "pass",
			},
			wantErr: true,
		},
		{
			name: "Empty password",
			fields: fields{
				prepareRepository: func(mr *mocks.MockRepository) {},
			},
			args: args{
				username: "newuser",
				email:    "new@example.com",
				password: "",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ctx := context.Background()
			mockRepo := mocks.NewMockRepository(ctrl)
			tt.fields.prepareRepository(mockRepo)

			svc := service.NewService(mockRepo, "secret")
			userID, err := svc.Register(ctx, tt.args.username, tt.args.email, tt.args.password)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantUserID, userID)
		})
	}
}

func TestService_ImportCSV(t *testing.T) {
	csvBody := strings.Join([]string{
		"Date,Category,Product,Quantity,Unit Price,Total Price",
		"2024-01-15,Electronics,Laptop,2,500.00,1000.00",
		"bad-date,Electronics,Mouse,1,20.00,20.00",
		"2024-01-16,Office,Desk,zero,150.00,150.00",
	}, "\n")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRepo := mocks.NewMockRepository(ctrl)

	mockRepo.EXPECT().
		InsertSales(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []models.SaleRecord) error {
			require.Len(t, records, 1)
			rec := records[0]
			require.Equal(t, 7, rec.UserID)
			require.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), rec.Date)
			require.Equal(t, "Electronics", rec.Category)
			require.Equal(t, "Laptop", rec.Product)
			require.Equal(t, 2, rec.Quantity)
			require.True(t, rec.UnitPrice.Equal(decimal.RequireFromString("500.00")))
			require.True(t, rec.TotalPrice.Equal(decimal.RequireFromString("1000.00")))
			return nil
		})
	mockRepo.EXPECT().
		AddUpload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, upload models.Upload) error {
			require.NotEmpty(t, upload.ID)
			require.Equal(t, 7, upload.UserID)
			require.Equal(t, "sales.csv", upload.Filename)
			require.Equal(t, 1, upload.Imported)
			require.Equal(t, 2, upload.Skipped)
			require.Equal(t, time.UTC, upload.CreatedAt.Location())
			return nil
		})

	svc := service.NewService(mockRepo, "secret")
	result, err := svc.ImportCSV(ctx, 7, "sales.csv", strings.NewReader(csvBody))
	require.NoError(t, err)
	require.Equal(t, 1, result.Imported)
	require.Equal(t, 2, result.Skipped)
	require.NotEmpty(t, result.UploadID)
}

func TestService_GetProfile(t *testing.T) {
	type fields struct {
		prepareRepository func(*mocks.MockRepository)
	}
	tests := []struct {
		name         string
		fields       fields
		userID       int
		wantErr      bool
		wantUsername string
		wantEmail    string
	}{
		{
			name: "Existing user",
			fields: fields{
				prepareRepository: func(mr *mocks.MockRepository) {
					mr.EXPECT().
						GetUserByID(gomock.Any(), 2).
						Return(models.User{
							ID:       2,
							Username: "seller",
							Email:    "seller@example.com",
							Password: "hashed",
						}, nil)
				},
			},
			userID:       2,
			wantErr:      false,
			wantUsername: "seller",
			wantEmail:    "seller@example.com",
		},
		{
			name: "Unknown user",
			fields: fields{
				prepareRepository: func(mr *mocks.MockRepository) {
					mr.EXPECT().
						GetUserByID(gomock.Any(), 99).
						Return(models.User{}, sql.ErrNoRows)
				},
			},
			userID:  99,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ctx := context.Background()
			mockRepo := mocks.NewMockRepository(ctrl)
			tt.fields.prepareRepository(mockRepo)

			svc := service.NewService(mockRepo, "secret")
			profile, err := svc.GetProfile(ctx, tt.userID)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.userID, profile.UserID)
			require.Equal(t, tt.wantUsername, profile.Username)
			require.Equal(t, tt.wantEmail, profile.Email)
		})
	}
}

func TestService_ExportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRepo := mocks.NewMockRepository(ctrl)

	mockRepo.EXPECT().
		GetSales(gomock.Any(), 7).
		Return([]models.SaleRecord{
			{
				UserID:     7,
				Date:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				Category:   "Electronics",
				Product:    "Laptop",
				Quantity:   2,
				UnitPrice:  decimal.RequireFromString("500.00"),
				TotalPrice: decimal.RequireFromString("1000.00"),
			},
		}, nil)

	svc := service.NewService(mockRepo, "secret")
	report, err := svc.ExportCSV(ctx, 7)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(report)), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "Date,Category,Product,Quantity,Unit Price,Total Price", lines[0])
	require.Equal(t, "2024-01-15,Electronics,Laptop,2,500,1000", lines[1])
}

func TestService_ExportCSV_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRepo := mocks.NewMockRepository(ctrl)

	mockRepo.EXPECT().
		GetSales(gomock.Any(), 7).
		Return(nil, errors.New("соединение потеряно"))

	svc := service.NewService(mockRepo, "secret")
	report, err := svc.ExportCSV(ctx, 7)
	require.Error(t, err)
	require.Nil(t, report)
}

func TestService_ImportCSV_MissingColumn(t *testing.T) {
	csvBody := strings.Join([]string{
		"Date,Category,Product,Quantity,Unit Price",
		"2024-01-15,Electronics,Laptop,2,500.00",
	}, "\n")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRepo := mocks.NewMockRepository(ctrl)

	svc := service.NewService(mockRepo, "secret")
	_, err := svc.ImportCSV(ctx, 7, "sales.csv", strings.NewReader(csvBody))
	require.Error(t, err)
	require.Contains(t, err.Error(), "Total Price")
}

func TestService_GetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRepo := mocks.NewMockRepository(ctrl)

	mockRepo.EXPECT().
		GetSalesSummary(gomock.Any(), 7).
		Return(models.SalesSummary{
			Total: decimal.RequireFromString("301.00"),
			Count: 4,
		}, nil)
	mockRepo.EXPECT().
		GetTopProducts(gomock.Any(), 7, 1).
		Return([]models.ProductTotal{
			{Product: "Laptop", Total: decimal.RequireFromString("200.00")},
		}, nil)
	mockRepo.EXPECT().
		GetDailySales(gomock.Any(), 7).
		Return([]models.PeriodTotal{
			{Period: "2024-01-15", Total: decimal.RequireFromString("101.00")},
			{Period: "2024-01-16", Total: decimal.RequireFromString("200.00")},
		}, nil)
	mockRepo.EXPECT().
		GetCategorySales(gomock.Any(), 7).
		Return([]models.CategoryTotal{
			{Category: "Electronics", Total: decimal.RequireFromString("200.00")},
			{Category: "Office", Total: decimal.RequireFromString("101.00")},
		}, nil)

	svc := service.NewService(mockRepo, "secret")
	dashboard, err := svc.GetDashboard(ctx, 7)
	require.NoError(t, err)
	require.True(t, dashboard.TotalSales.Equal(decimal.RequireFromString("301.00")))
	require.Equal(t, 4, dashboard.TotalOrders)
	require.True(t, dashboard.AvgOrderValue.Equal(decimal.RequireFromString("75.25")))
	require.Equal(t, "Laptop", dashboard.TopProduct)
	require.Len(t, dashboard.SalesTrend, 2)
	require.Equal(t, "2024-01-15", dashboard.SalesTrend[0].Period)
	require.Len(t, dashboard.CategorySales, 2)

	sum := decimal.Zero
	for _, c := range dashboard.CategorySales {
		sum = sum.Add(c.Total)
	}
	require.True(t, sum.Equal(dashboard.TotalSales))
}

func TestService_GetDashboard_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRepo := mocks.NewMockRepository(ctrl)

	mockRepo.EXPECT().
		GetSalesSummary(gomock.Any(), 9).
		Return(models.SalesSummary{Total: decimal.Zero, Count: 0}, nil)
	mockRepo.EXPECT().
		GetTopProducts(gomock.Any(), 9, 1).
		Return(nil, nil)
	mockRepo.EXPECT().
		GetDailySales(gomock.Any(), 9).
		Return(nil, nil)
	mockRepo.EXPECT().
		GetCategorySales(gomock.Any(), 9).
		Return(nil, nil)

	svc := service.NewService(mockRepo, "secret")
	dashboard, err := svc.GetDashboard(ctx, 9)
	require.NoError(t, err)
	require.True(t, dashboard.TotalSales.IsZero())
	require.Equal(t, 0, dashboard.TotalOrders)
	require.True(t, dashboard.AvgOrderValue.IsZero())
	require.Equal(t, "", dashboard.TopProduct)
}
