package v1

import (
	"net/http"

	"github.com/atelier-luz/backend/internal/httputil"
	"github.com/atelier-luz/backend/internal/ledger"
	"github.com/atelier-luz/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterBudgetRoutes registers the routes for the budget summary and
// the transaction log with the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Summary
	{
		r.OPTIONS("", OptionsBudget)
		r.GET("", GetBudget)
	}

	// Transaction log
	{
		r.OPTIONS("/transactions", OptionsTransactionList)
		r.GET("/transactions", GetTransactions)
		r.POST("/transactions", CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/transactions/:id", OptionsTransactionDetail)
		r.GET("/transactions/:id", GetTransaction)
		r.DELETE("/transactions/:id", DeleteTransaction)
	}
}

// OptionsBudget returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budget
//	@Success		204
//	@Router			/v1/budget [options]
func OptionsBudget(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetBudget returns the budget summary
//
//	@Summary		Get budget
//	@Description	Returns the envelopes with their balances and the recomputed budget totals
//	@Tags			Budget
//	@Produce		json
//	@Success		200	{object}	BudgetResponse
//	@Failure		500	{object}	BudgetResponse
//	@Router			/v1/budget [get]
func GetBudget(c *gin.Context) {
	summary, err := ledger.Summarize(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &summary})
}

// OptionsTransactionList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budget
//	@Success		204
//	@Router			/v1/budget/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsTransactionDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Budget
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/budget/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	var transaction models.Transaction
	err := models.DB.First(&transaction, &models.Transaction{DefaultModel: models.DefaultModel{ID: uri.ID.UUID}}).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	httputil.OptionsGetDelete(c)
}

// CreateTransaction appends an entry to the transaction log
//
//	@Summary		Create transaction
//	@Description	Appends an entry to the transaction log. Expenses require an envelope and update its spent amount atomically.
//	@Tags			Budget
//	@Produce		json
//	@Success		201	{object}	TransactionResponse
//	@Failure		400	{object}	TransactionResponse
//	@Failure		404	{object}	TransactionResponse
//	@Failure		500	{object}	TransactionResponse
//	@Param			transaction	body		TransactionEditable	true	"Transaction"
//	@Router			/v1/budget/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &e})
		return
	}

	var transaction models.Transaction
	var err error

	switch editable.Type {
	case models.TransactionIncome:
		transaction, err = ledger.AddIncome(models.DB, editable.Description, editable.Date, editable.Amount)

	case models.TransactionExpense:
		if editable.EnvelopeID == nil {
			e := ledger.ErrEnvelopeRequired.Error()
			c.JSON(http.StatusBadRequest, TransactionResponse{Error: &e})
			return
		}

		transaction, err = ledger.AddExpense(models.DB, *editable.EnvelopeID, editable.Description, editable.Date, editable.Amount)

	default:
		e := models.ErrTransactionTypeInvalid.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &e})
		return
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	data := newTransaction(transaction)
	c.JSON(http.StatusCreated, TransactionResponse{Data: &data})
}

// GetTransactions returns the transaction log
//
//	@Summary		Get transactions
//	@Description	Returns the transaction log, newest first
//	@Tags			Budget
//	@Produce		json
//	@Success		200	{object}	TransactionListResponse
//	@Failure		400	{object}	TransactionListResponse
//	@Failure		500	{object}	TransactionListResponse
//	@Param			type		query	string	false	"Filter by transaction type"
//	@Param			envelope	query	string	false	"Filter by envelope ID"
//	@Param			offset		query	uint	false	"The offset of the first Transaction returned. Defaults to 0."
//	@Param			limit		query	int		false	"Maximum number of Transactions to return. Defaults to 50."
//	@Router			/v1/budget/transactions [get]
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &e})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model()
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &e})
		return
	}

	q := models.DB.
		Order("date DESC, created_at DESC").
		Where(&filterModel, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 transactions and set the limit
	if !slices.Contains(setFields, "Limit") {
		filter.Limit = 50
	}
	q = q.Limit(filter.Limit)

	var transactions []models.Transaction
	err = q.Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	var total int64
	err = q.Limit(-1).Offset(-1).Count(&total).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  filter.Limit,
		},
	})
}

// GetTransaction returns a specific transaction
//
//	@Summary		Get transaction
//	@Description	Returns a specific transaction
//	@Tags			Budget
//	@Produce		json
//	@Success		200	{object}	TransactionResponse
//	@Failure		400	{object}	TransactionResponse
//	@Failure		404	{object}	TransactionResponse
//	@Failure		500	{object}	TransactionResponse
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/budget/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &e})
		return
	}

	var transaction models.Transaction
	err := models.DB.First(&transaction, &models.Transaction{DefaultModel: models.DefaultModel{ID: uri.ID.UUID}}).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	data := newTransaction(transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// DeleteTransaction removes an entry from the transaction log
//
//	@Summary		Delete transaction
//	@Description	Removes an entry from the transaction log. For expenses, the envelope's spent amount is reduced again atomically.
//	@Tags			Budget
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/budget/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	if err := ledger.DeleteTransaction(models.DB, uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
