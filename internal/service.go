package internal

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/VitaBrrevis/orders-export/internal/model"
)

type IService interface {
	GetOrdersPage(context.Context, int, string) (model.OrdersPage, error)
	TableRows(model.OrdersPage) model.OrdersPageOutput
	ExportCSV([]model.Order, []string, string) (string, string, error)
	IssueSession(string) (string, error)
	VerifySession(string) error
}

type Service struct {
	source    IOrderSource
	logger    *zap.SugaredLogger
	adminKey  string
	jwtSecret []byte
	pageSize  int
}

func NewService(source IOrderSource, adminKey, jwtSecret string, pageSize int, logger *zap.SugaredLogger) *Service {
	return &Service{
		source:    source,
		logger:    logger,
		adminKey:  adminKey,
		jwtSecret: []byte(jwtSecret),
		pageSize:  pageSize,
	}
}

func (s Service) GetOrdersPage(ctx context.Context, first int, after string) (model.OrdersPage, error) {
	if first <= 0 {
		first = s.pageSize
	}

	page, err := s.source.OrdersPage(ctx, first, after)
	if err != nil {
		return model.OrdersPage{}, err
	}
	return page, nil
}

func (s Service) TableRows(page model.OrdersPage) model.OrdersPageOutput {
	rows := make([]model.OrderRowOutput, 0, len(page.Orders))
	for _, o := range page.Orders {
		rows = append(rows, TableRow(o))
	}
	return model.OrdersPageOutput{Rows: rows, PageInfo: page.PageInfo}
}

// ExportCSV projects the selected orders and serializes them with the column
// set of the requested profile. Returns the filename and the CSV text.
func (s Service) ExportCSV(orders []model.Order, selected []string, profile string) (string, string, error) {
	columns, err := ColumnsForProfile(profile)
	if err != nil {
		return "", "", err
	}

	set := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		set[id] = struct{}{}
	}

	rows := ProjectOrders(orders, set)
	return ExportFilename(time.Now()), ToCSV(rows, columns), nil
}

func (s Service) IssueSession(key string) (string, error) {
	if key == "" || key != s.adminKey {
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour * 12).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", err
	}

	return t, nil
}

func (s Service) VerifySession(tokenString string) error {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return ErrInvalidSession
	}
	return nil
}
