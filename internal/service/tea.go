package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/teashop-server/internal/logger"
	"github.com/dtroode/teashop-server/internal/model"
)

// Tea implements the tea lifecycle. Mutations require an authenticated actor.
type Tea struct {
	store  model.TeaStore
	logger *logger.Logger
}

func NewTea(store model.TeaStore, logger *logger.Logger) *Tea {
	return &Tea{store: store, logger: logger}
}

// List returns every tea ordered by id. The result is never nil.
func (s *Tea) List(ctx context.Context) ([]model.Tea, error) {
	teas, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error("Tea service: failed to list teas",
			"error", err.Error())
		return nil, fmt.Errorf("failed to list teas: %w", err)
	}
	if teas == nil {
		teas = []model.Tea{}
	}

	return teas, nil
}

func (s *Tea) Create(ctx context.Context, actor model.User, params model.TeaParams) (model.Tea, error) {
	if err := requireActor(actor); err != nil {
		return model.Tea{}, err
	}

	tea, err := s.store.Create(ctx, model.Tea{Name: params.Name, Origin: params.Origin})
	if err != nil {
		s.logger.Error("Tea service: failed to create tea",
			"user_id", actor.ID,
			"error", err.Error())
		return model.Tea{}, fmt.Errorf("failed to create tea: %w", err)
	}

	s.logger.Info("Tea service: tea created",
		"user_id", actor.ID,
		"tea_id", tea.ID)

	return tea, nil
}

func (s *Tea) Update(ctx context.Context, actor model.User, id int64, params model.TeaParams) (model.Tea, error) {
	if err := requireActor(actor); err != nil {
		return model.Tea{}, err
	}

	tea, err := s.store.Update(ctx, model.Tea{ID: id, Name: params.Name, Origin: params.Origin})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Tea{}, fmt.Errorf("tea %d: %w", id, err)
		}
		s.logger.Error("Tea service: failed to update tea",
			"user_id", actor.ID,
			"tea_id", id,
			"error", err.Error())
		return model.Tea{}, fmt.Errorf("failed to update tea: %w", err)
	}

	s.logger.Info("Tea service: tea updated",
		"user_id", actor.ID,
		"tea_id", id)

	return tea, nil
}

func (s *Tea) Delete(ctx context.Context, actor model.User, id int64) error {
	if err := requireActor(actor); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("tea %d: %w", id, err)
		}
		s.logger.Error("Tea service: failed to delete tea",
			"user_id", actor.ID,
			"tea_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete tea: %w", err)
	}

	s.logger.Info("Tea service: tea deleted",
		"user_id", actor.ID,
		"tea_id", id)

	return nil
}

func requireActor(actor model.User) error {
	if actor.ID == 0 || actor.Username == "" {
		return fmt.Errorf("%w: %w", model.ErrUnauthorized, model.ErrMissingToken)
	}
	return nil
}
