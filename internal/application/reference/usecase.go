package reference

import (
	"github.com/officinemattio/verniciatura-api/internal/domain/entity"
	"github.com/officinemattio/verniciatura-api/internal/domain/repository"
)

// ReferenceUseCase catálogos que alimentam os selects do formulário:
// modelos de quadro, agentes comerciais e paleta de cores.
type ReferenceUseCase struct {
	refRepo repository.ReferenceRepository
}

// NewReferenceUseCase constrói o caso de uso de catálogos.
func NewReferenceUseCase(refRepo repository.ReferenceRepository) *ReferenceUseCase {
	return &ReferenceUseCase{refRepo: refRepo}
}

// ListModels devolve os modelos de bicicleta em ordem alfabética.
func (uc *ReferenceUseCase) ListModels() ([]*entity.Model, error) {
	return uc.refRepo.ListModels()
}

// ListAgents devolve os agentes comerciais em ordem alfabética.
func (uc *ReferenceUseCase) ListAgents() ([]*entity.Agent, error) {
	return uc.refRepo.ListAgents()
}

// ListColors devolve a paleta na ordem de exibição do catálogo.
func (uc *ReferenceUseCase) ListColors() ([]*entity.Color, error) {
	return uc.refRepo.ListColors()
}
