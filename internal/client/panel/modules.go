package panel

import (
	"context"
	"fmt"
	"net/http"
)

type ModuleService interface {
	List(ctx context.Context) ([]Module, error)
	Update(ctx context.Context, id int64, update ModuleUpdate) (*Module, error)
}

type moduleService struct {
	client *Client
}

var _ ModuleService = (*moduleService)(nil)

func (s *moduleService) List(ctx context.Context) ([]Module, error) {
	var modules []Module
	if err := s.client.do(ctx, http.MethodGet, "/api/modules", nil, nil, &modules); err != nil {
		return nil, err
	}
	return modules, nil
}

func (s *moduleService) Update(ctx context.Context, id int64, update ModuleUpdate) (*Module, error) {
	var module Module
	path := fmt.Sprintf("/api/modules/%d", id)
	if err := s.client.do(ctx, http.MethodPut, path, nil, update, &module); err != nil {
		return nil, err
	}
	return &module, nil
}
