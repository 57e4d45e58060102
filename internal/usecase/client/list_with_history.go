package client

import (
	"context"
	"log"

	"github.com/BruksfildServices01/pet-control/internal/domain/retention"
)

type ListClientsWithHistory struct {
	repo retention.Repository
}

func NewListClientsWithHistory(repo retention.Repository) *ListClientsWithHistory {
	return &ListClientsWithHistory{repo: repo}
}

// Execute nunca falha: se alguma coleção não puder ser lida, registra
// no log e devolve lista vazia.
func (uc *ListClientsWithHistory) Execute(ctx context.Context) []retention.ClientView {
	snap, err := retention.LoadSnapshot(ctx, uc.repo)
	if err != nil {
		log.Printf("clients with history: %v", err)
		return []retention.ClientView{}
	}

	return retention.BuildClientViews(snap.Clients, snap.Sales, snap.Agenda)
}
