package models_test

import (
	"log"
	"testing"
	"time"

	"github.com/atelier-luz/backend/internal/models"
	"github.com/atelier-luz/backend/internal/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TestSuiteStandard struct {
	suite.Suite
}

// Pseudo-Test run by go test that runs the test suite.
func TestStandard(t *testing.T) {
	suite.Run(t, new(TestSuiteStandard))
}

// SetupTest is called before each test in the suite.
func (suite *TestSuiteStandard) SetupTest() {
	err := models.Connect(test.TmpFile(suite.T()))
	if err != nil {
		log.Fatalf("Database initialization failed with: %#v", err)
	}
}

// TearDownTest is called after each test in the suite.
func (suite *TestSuiteStandard) TearDownTest() {
	sqlDB, err := models.DB.DB()
	if err != nil {
		log.Fatalf("Database connection for teardown failed with: %#v", err)
	}
	sqlDB.Close()
}

func (suite *TestSuiteStandard) TestEnvelopeNameUnique() {
	envelope := models.Envelope{Name: "Equipamento"}
	suite.Require().Nil(models.DB.Create(&envelope).Error)

	duplicate := models.Envelope{Name: "Equipamento"}
	err := models.DB.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrEnvelopeNameNotUnique)
}

func (suite *TestSuiteStandard) TestResourceNotFound() {
	var contract models.Contract
	err := models.DB.First(&contract, "client_name = ?", "does not exist").Error

	suite.Require().NotNil(err)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "there is no contract matching your query")
}

func (suite *TestSuiteStandard) TestTransactionValidation() {
	err := models.DB.Create(&models.Transaction{Type: "transfer", Amount: decimal.NewFromInt(10)}).Error
	suite.Assert().ErrorIs(err, models.ErrTransactionTypeInvalid)

	err = models.DB.Create(&models.Transaction{Type: models.TransactionIncome, Amount: decimal.Zero}).Error
	suite.Assert().ErrorIs(err, models.ErrTransactionAmountNotPositive)

	err = models.DB.Create(&models.Transaction{Type: models.TransactionIncome, Amount: decimal.NewFromInt(-5)}).Error
	suite.Assert().ErrorIs(err, models.ErrTransactionAmountNotPositive)
}

func (suite *TestSuiteStandard) TestTransactionDateDefaultsToNow() {
	transaction := models.Transaction{Type: models.TransactionIncome, Amount: decimal.NewFromInt(10)}
	suite.Require().Nil(models.DB.Create(&transaction).Error)

	suite.Assert().False(transaction.Date.IsZero())
	suite.Assert().Equal(time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestInstallmentValidation() {
	err := models.DB.Create(&models.InvestmentInstallment{Amount: decimal.Zero}).Error
	suite.Assert().ErrorIs(err, models.ErrInstallmentAmountNotPositive)
}

func (suite *TestSuiteStandard) TestContractTrimsStrings() {
	contract := models.Contract{
		ClientName: "  Ana Souza  ",
		EventDate:  " 2024-06-15 ",
	}
	suite.Require().Nil(models.DB.Create(&contract).Error)

	suite.Assert().Equal("Ana Souza", contract.ClientName)
	suite.Assert().Equal("2024-06-15", contract.EventDate)
}

func (suite *TestSuiteStandard) TestContractServiceLinesRoundtrip() {
	contract := models.Contract{
		ClientName: "Ana Souza",
		Services: models.ServiceLines{
			{Name: "Ensaio Gestante", Price: "R$ 1.000", EventDate: "2024-06-15"},
		},
		StoreItems: models.StoreItems{
			{Name: "Álbum", Price: decimal.NewFromInt(450), Quantity: 1},
		},
	}
	suite.Require().Nil(models.DB.Create(&contract).Error)

	var reloaded models.Contract
	suite.Require().Nil(models.DB.First(&reloaded, contract.ID).Error)

	suite.Require().Len(reloaded.Services, 1)
	suite.Assert().Equal("R$ 1.000", reloaded.Services[0].Price)
	suite.Require().Len(reloaded.StoreItems, 1)
	suite.Assert().True(reloaded.StoreItems[0].Price.Equal(decimal.NewFromInt(450)))
}

func (suite *TestSuiteStandard) TestOrderStatusDefaultsToOpen() {
	order := models.Order{ClientName: "Ana Souza"}
	suite.Require().Nil(models.DB.Create(&order).Error)

	suite.Assert().Equal(models.OrderOpen, order.Status)
}

func (suite *TestSuiteStandard) TestTimestampsUTC() {
	envelope := models.Envelope{Name: "Equipamento"}
	suite.Require().Nil(models.DB.Create(&envelope).Error)

	var reloaded models.Envelope
	suite.Require().Nil(models.DB.First(&reloaded, envelope.ID).Error)

	suite.Assert().Equal(time.UTC, reloaded.CreatedAt.Location())
	suite.Assert().Equal(time.UTC, reloaded.UpdatedAt.Location())
}
