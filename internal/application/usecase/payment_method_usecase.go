package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/retail-pos/internal/application/dto"
	"github.com/tu-usuario/retail-pos/internal/domain"
	"github.com/tu-usuario/retail-pos/internal/domain/entity"
	"github.com/tu-usuario/retail-pos/internal/domain/repository"
)

// PaymentMethodUseCase CRUD de métodos de pago (admin).
type PaymentMethodUseCase struct {
	repo repository.PaymentMethodRepository
}

// NewPaymentMethodUseCase construye el caso de uso.
func NewPaymentMethodUseCase(repo repository.PaymentMethodRepository) *PaymentMethodUseCase {
	return &PaymentMethodUseCase{repo: repo}
}

// Create da de alta un método de pago, activo por defecto.
func (uc *PaymentMethodUseCase) Create(in dto.CreatePaymentMethodRequest) (*entity.PaymentMethod, error) {
	if in.Name == "" || in.SurchargePercent.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	method := &entity.PaymentMethod{
		ID:               uuid.New().String(),
		Name:             in.Name,
		SurchargePercent: in.SurchargePercent,
		Active:           true,
		CreatedAt:        time.Now(),
	}
	if err := uc.repo.Create(method); err != nil {
		return nil, err
	}
	return method, nil
}

// List todos los métodos, activos o no.
func (uc *PaymentMethodUseCase) List() ([]*entity.PaymentMethod, error) {
	return uc.repo.List()
}

// ListActive los métodos ofrecidos en el checkout.
func (uc *PaymentMethodUseCase) ListActive() ([]*entity.PaymentMethod, error) {
	return uc.repo.ListActive()
}

// Toggle invierte el flag activo del método.
func (uc *PaymentMethodUseCase) Toggle(id string) error {
	method, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if method == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SetActive(id, !method.Active)
}
