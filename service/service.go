package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"time"

	"salesdash/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -destination=./mocks/mock_repository.go -package=mocks salesdash/service Repository

type Repository interface {
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByID(ctx context.Context, id int) (models.User, error)
	CreateUser(ctx context.Context, username, email, password string) (int, error)
	InsertSales(ctx context.Context, records []models.SaleRecord) error
	GetSales(ctx context.Context, userID int) ([]models.SaleRecord, error)
	GetSalesSummary(ctx context.Context, userID int) (models.SalesSummary, error)
	GetDailySales(ctx context.Context, userID int) ([]models.PeriodTotal, error)
	GetMonthlySales(ctx context.Context, userID int) ([]models.PeriodTotal, error)
	GetCategorySales(ctx context.Context, userID int) ([]models.CategoryTotal, error)
	GetTopProducts(ctx context.Context, userID, limit int) ([]models.ProductTotal, error)
	AddUpload(ctx context.Context, upload models.Upload) error
	GetUserUploads(ctx context.Context, userID int) ([]models.Upload, error)
}

type Service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return Service{
		repo:      repo,
		jwtSecret: jwtSecret,
	}
}

type DashboardResponse struct {
	TotalSales    decimal.Decimal `json:"totalSales"`
	TotalOrders   int             `json:"totalOrders"`
	AvgOrderValue decimal.Decimal `json:"avgOrderValue"`
	TopProduct    string          `json:"topProduct"`
	SalesTrend    []PeriodSales   `json:"salesTrend"`
	CategorySales []CategorySales `json:"categorySales"`
}

type AnalyticsResponse struct {
	MonthlySales  []PeriodSales   `json:"monthlySales"`
	CategorySales []CategorySales `json:"categorySales"`
	TopProducts   []ProductSales  `json:"topProducts"`
}

type PeriodSales struct {
	Period string          `json:"period"`
	Total  decimal.Decimal `json:"total"`
}

type CategorySales struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

type ProductSales struct {
	Product string          `json:"product"`
	Total   decimal.Decimal `json:"total"`
}

type ImportResult struct {
	UploadID string `json:"uploadId"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
}

type ProfileResponse struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UploadInfo struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	Imported  int       `json:"imported"`
	Skipped   int       `json:"skipped"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s Service) Register(
	ctx context.Context,
	username, email, password string,
) (int, error) {
	if username == "" || email == "" || password == "" {
		return 0, errors.New("имя пользователя, email и пароль обязательны")
	}
	_, err := s.repo.GetUserByEmail(ctx, email)
	if err == nil {
		return 0, errors.New("email уже зарегистрирован")
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}
	hashed, err := bcryptHash(password)
	if err != nil {
		return 0, err
	}
	return s.repo.CreateUser(ctx, username, email, hashed)
}

func (s Service) Login(
	ctx context.Context,
	email, password string,
) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", errors.New("неверные учетные данные")
		}
		return "", err
	}
	if !bcryptCompare(user.Password, password) {
		return "", errors.New("неверные учетные данные")
	}
	return generateJWT(user, s.jwtSecret)
}

func (s Service) GetProfile(
	ctx context.Context,
	userID int,
) (ProfileResponse, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ProfileResponse{}, errors.New("пользователь не найден")
		}
		return ProfileResponse{}, err
	}
	return ProfileResponse{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

func (s Service) ImportCSV(
	ctx context.Context,
	userID int,
	filename string,
	r io.Reader,
) (ImportResult, error) {
	records, skipped, err := parseSalesCSV(r, userID)
	if err != nil {
		return ImportResult{}, err
	}
	if len(records) > 0 {
		if err := s.repo.InsertSales(ctx, records); err != nil {
			return ImportResult{}, err
		}
	}
	upload := models.Upload{
		ID:        newUploadID(),
		UserID:    userID,
		Filename:  filename,
		Imported:  len(records),
		Skipped:   skipped,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.AddUpload(ctx, upload); err != nil {
		return ImportResult{}, err
	}
	return ImportResult{
		UploadID: upload.ID,
		Imported: upload.Imported,
		Skipped:  upload.Skipped,
	}, nil
}

func (s Service) ExportCSV(
	ctx context.Context,
	userID int,
) ([]byte, error) {
	records, err := s.repo.GetSales(ctx, userID)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := writeSalesCSV(&buf, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s Service) GetDashboard(
	ctx context.Context,
	userID int,
) (DashboardResponse, error) {
	summary, err := s.repo.GetSalesSummary(ctx, userID)
	if err != nil {
		return DashboardResponse{}, err
	}

	avg := decimal.Zero
	if summary.Count > 0 {
		avg = summary.Total.Div(decimal.NewFromInt(int64(summary.Count))).Round(2)
	}

	topProduct := ""
	top, err := s.repo.GetTopProducts(ctx, userID, 1)
	if err != nil {
		return DashboardResponse{}, err
	}
	if len(top) > 0 {
		topProduct = top[0].Product
	}

	daily, err := s.repo.GetDailySales(ctx, userID)
	if err != nil {
		return DashboardResponse{}, err
	}
	categories, err := s.repo.GetCategorySales(ctx, userID)
	if err != nil {
		return DashboardResponse{}, err
	}

	return DashboardResponse{
		TotalSales:    summary.Total,
		TotalOrders:   summary.Count,
		AvgOrderValue: avg,
		TopProduct:    topProduct,
		SalesTrend:    toPeriodSales(daily),
		CategorySales: toCategorySales(categories),
	}, nil
}

func (s Service) GetAnalytics(
	ctx context.Context,
	userID int,
) (AnalyticsResponse, error) {
	monthly, err := s.repo.GetMonthlySales(ctx, userID)
	if err != nil {
		return AnalyticsResponse{}, err
	}
	categories, err := s.repo.GetCategorySales(ctx, userID)
	if err != nil {
		return AnalyticsResponse{}, err
	}
	top, err := s.repo.GetTopProducts(ctx, userID, 5)
	if err != nil {
		return AnalyticsResponse{}, err
	}

	var products []ProductSales
	for _, t := range top {
		products = append(
			products,
			ProductSales{
				Product: t.Product,
				Total:   t.Total,
			},
		)
	}

	return AnalyticsResponse{
		MonthlySales:  toPeriodSales(monthly),
		CategorySales: toCategorySales(categories),
		TopProducts:   products,
	}, nil
}

func (s Service) GetUploads(
	ctx context.Context,
	userID int,
) ([]UploadInfo, error) {
	uploads, err := s.repo.GetUserUploads(ctx, userID)
	if err != nil {
		return nil, err
	}
	var infos []UploadInfo
	for _, u := range uploads {
		infos = append(
			infos,
			UploadInfo{
				ID:        u.ID,
				Filename:  u.Filename,
				Imported:  u.Imported,
				Skipped:   u.Skipped,
				CreatedAt: u.CreatedAt,
			},
		)
	}
	return infos, nil
}

func toPeriodSales(totals []models.PeriodTotal) []PeriodSales {
	var result []PeriodSales
	for _, t := range totals {
		result = append(
			result,
			PeriodSales{
				Period: t.Period,
				Total:  t.Total,
			},
		)
	}
	return result
}

func toCategorySales(totals []models.CategoryTotal) []CategorySales {
	var result []CategorySales
	for _, t := range totals {
		result = append(
			result,
			CategorySales{
				Category: t.Category,
				Total:    t.Total,
			},
		)
	}
	return result
}

func bcryptHash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func bcryptCompare(hashed, password string) bool {
	err := bcrypt.CompareHashAndPassword(
		[]byte(hashed),
		[]byte(password),
	)
	return err == nil
}

func generateJWT(
	user models.User,
	secret string,
) (string, error) {
	token := jwt.NewWithClaims(
		jwt.SigningMethodHS256,
		jwt.MapClaims{
			"user_id":  user.ID,
			"username": user.Username,
			"exp":      time.Now().Add(24 * time.Hour).Unix(),
		},
	)
	tokenStr, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}
	return tokenStr, nil
}
