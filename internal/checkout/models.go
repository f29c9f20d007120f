package checkout

type ItemInput struct {
	BookID   string `json:"book_id"`
	Quantity int    `json:"quantity"`
}

type OrderResult struct {
	OrderID       string
	TotalQuantity int
	TotalPrice    int
}

type OrderSummary struct {
	ID            string `json:"id"`
	TotalQuantity int    `json:"total_quantity"`
	TotalPrice    int    `json:"total_price"`
}

type OrderLine struct {
	BookID        string `json:"book_id"`
	BookTitle     string `json:"book_title"`
	Quantity      int    `json:"quantity"`
	SubtotalPrice int    `json:"subtotal_price"`
}

type OrderDetail struct {
	ID            string      `json:"id"`
	Items         []OrderLine `json:"items"`
	TotalQuantity int         `json:"total_quantity"`
	TotalPrice    int         `json:"total_price"`
}

type GenreSales struct {
	Name      string
	UnitsSold int
}

type Statistics struct {
	TotalTransactions        int    `json:"total_transactions"`
	AverageTransactionAmount int    `json:"average_transaction_amount"`
	MostBookSalesGenre       string `json:"most_book_sales_genre"`
	FewestBookSalesGenre     string `json:"fewest_book_sales_genre"`
}
