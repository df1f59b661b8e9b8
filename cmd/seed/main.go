package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"github.com/shopspring/decimal"

	"propostas-backend/internal/adapter/repository/mysql"
	"propostas-backend/internal/config"
	domain "propostas-backend/internal/domain/proposal"
	"propostas-backend/internal/infrastructure/db"
	"propostas-backend/pkg/annuity"
	"propostas-backend/pkg/cpf"
	"propostas-backend/pkg/id"
)

// known-valid CPFs for sample data
var seedTaxIDs = []string{
	"096.077.107-70",
	"390.533.447-05",
	"762.144.387-20",
	"121.317.447-30",
	"703.802.917-10",
	"144.267.227-21",
	"337.869.267-00",
	"540.972.817-02",
	"817.055.597-04",
	"221.993.157-80",
}

var seedStatuses = []domain.Status{
	domain.StatusDraft,
	domain.StatusInReview,
	domain.StatusApproved,
	domain.StatusRejected,
	domain.StatusCancelled,
}

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(&domain.Proposal{}); err != nil {
		log.Fatal(err)
	}

	repo := mysql.NewProposalRepository(gdb)
	ctx := context.Background()

	for i, taxID := range seedTaxIDs {
		amount := float64(rand.Intn(49000) + 1000)
		installments := rand.Intn(55) + 6
		income := float64(rand.Intn(6500) + 1500)

		quote, err := annuity.Compute(decimal.NewFromFloat(amount), installments, domain.MonthlyRate)
		if err != nil {
			log.Fatal(err)
		}
		margin := decimal.NewFromFloat(income).
			Mul(decimal.NewFromFloat(domain.MarginRatio)).
			Round(2)

		// a different status per row, in_review for the second one only so
		// the active-review uniqueness stays satisfied
		status := seedStatuses[i%len(seedStatuses)]

		p := &domain.Proposal{
			ProposalID:        id.NewID32(),
			ApplicantName:     fmt.Sprintf("Cliente Teste %d", i+1),
			TaxID:             cpf.Normalize(taxID),
			RequestedAmount:   amount,
			InstallmentCount:  installments,
			MonthlyIncome:     income,
			InterestRate:      domain.MonthlyRate,
			InstallmentAmount: quote.Installment.InexactFloat64(),
			TotalAmount:       quote.Total.InexactFloat64(),
			AffordableMargin:  margin.InexactFloat64(),
			Status:            status,
		}
		if err := repo.Create(ctx, p); err != nil {
			log.Fatal(err)
		}
		log.Printf("seeded proposal %s (%s, %s)", p.ProposalID, cpf.Format(p.TaxID), p.Status)
	}
}
