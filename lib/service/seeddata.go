package service

import "github.com/google/uuid"

// Demo data for the dashboard. IDs are fixed so re-seeding is
// idempotent.

type seedUser struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Password string
}

type seedCustomer struct {
	ID       uuid.UUID
	Name     string
	Email    string
	ImageURL string
}

type seedInvoice struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Amount     int64 // cents
	Status     string
	Date       string
}

type seedRevenue struct {
	Month   string
	Revenue int64
}

var seedUsers = []seedUser{
	{
		ID:       uuid.MustParse("410544b2-4001-4271-9855-fec4b6a6442a"),
		Name:     "User",
		Email:    "user@nextmail.com",
		Password: "123456",
	},
}

var seedCustomers = []seedCustomer{
	{
		ID:       uuid.MustParse("d6e15727-9fe1-4961-8c5b-ea44a9bd81aa"),
		Name:     "Evil Rabbit",
		Email:    "evil@rabbit.com",
		ImageURL: "/customers/evil-rabbit.png",
	},
	{
		ID:       uuid.MustParse("3958dc9e-712f-4377-85e9-fec4b6a6442a"),
		Name:     "Delba de Oliveira",
		Email:    "delba@oliveira.com",
		ImageURL: "/customers/delba-de-oliveira.png",
	},
	{
		ID:       uuid.MustParse("3958dc9e-742f-4377-85e9-fec4b6a6442a"),
		Name:     "Lee Robinson",
		Email:    "lee@robinson.com",
		ImageURL: "/customers/lee-robinson.png",
	},
	{
		ID:       uuid.MustParse("76d65c26-f784-44a2-ac19-586678f7c2f2"),
		Name:     "Michael Novotny",
		Email:    "michael@novotny.com",
		ImageURL: "/customers/michael-novotny.png",
	},
	{
		ID:       uuid.MustParse("cc27c14a-0acf-4f4a-a6c9-d45682c144b9"),
		Name:     "Amy Burns",
		Email:    "amy@burns.com",
		ImageURL: "/customers/amy-burns.png",
	},
	{
		ID:       uuid.MustParse("13d07535-c59e-4157-a011-f8d2ef4e0cbb"),
		Name:     "Balazs Orban",
		Email:    "balazs@orban.com",
		ImageURL: "/customers/balazs-orban.png",
	},
}

var seedInvoices = []seedInvoice{
	{ID: uuid.MustParse("9e1f02b4-31f1-4261-867b-ec6a22ea49f1"), CustomerID: seedCustomers[0].ID, Amount: 15795, Status: "pending", Date: "2022-12-06"},
	{ID: uuid.MustParse("3a9f4c8f-6b3e-43bd-a9f2-55c1c1a31f3c"), CustomerID: seedCustomers[1].ID, Amount: 20348, Status: "pending", Date: "2022-11-14"},
	{ID: uuid.MustParse("e44b6ac5-9725-4bfb-bb97-6626cec3fd91"), CustomerID: seedCustomers[4].ID, Amount: 3040, Status: "paid", Date: "2022-10-29"},
	{ID: uuid.MustParse("14d4d2b1-8c37-437a-84e0-ee4a73d1a638"), CustomerID: seedCustomers[3].ID, Amount: 44800, Status: "paid", Date: "2023-09-10"},
	{ID: uuid.MustParse("21f0a1c7-c5ae-4c45-9c79-efb2ae7b9f31"), CustomerID: seedCustomers[5].ID, Amount: 34577, Status: "pending", Date: "2023-08-05"},
	{ID: uuid.MustParse("5b0e8f6d-6d51-4c5c-90af-94b4de9a0fa6"), CustomerID: seedCustomers[2].ID, Amount: 54246, Status: "pending", Date: "2023-07-16"},
	{ID: uuid.MustParse("c2cd33d6-5399-4b52-b82a-e7b1ab2e3a61"), CustomerID: seedCustomers[0].ID, Amount: 666, Status: "pending", Date: "2023-06-27"},
	{ID: uuid.MustParse("7f4c2b8d-f22c-4c3d-b14b-7e2db81ff150"), CustomerID: seedCustomers[3].ID, Amount: 32545, Status: "paid", Date: "2023-06-09"},
	{ID: uuid.MustParse("ae723bbc-b71f-4d29-8818-5e1f46a73f8d"), CustomerID: seedCustomers[4].ID, Amount: 1250, Status: "paid", Date: "2023-06-17"},
	{ID: uuid.MustParse("f0c3258b-a2ee-4c23-9845-5adba732b5d7"), CustomerID: seedCustomers[5].ID, Amount: 8546, Status: "paid", Date: "2023-06-07"},
	{ID: uuid.MustParse("a8d1eccc-6f83-4c6a-8e16-0a14b8c3f071"), CustomerID: seedCustomers[1].ID, Amount: 500, Status: "paid", Date: "2023-08-19"},
	{ID: uuid.MustParse("bc5a92f7-213f-4b66-b53c-c2e2d05a2f39"), CustomerID: seedCustomers[5].ID, Amount: 8945, Status: "paid", Date: "2023-06-03"},
	{ID: uuid.MustParse("dd61c9e1-23e9-4aab-b48d-32e295c22f94"), CustomerID: seedCustomers[2].ID, Amount: 1000, Status: "paid", Date: "2022-06-05"},
}

var seedRevenues = []seedRevenue{
	{Month: "Jan", Revenue: 2000},
	{Month: "Feb", Revenue: 1800},
	{Month: "Mar", Revenue: 2200},
	{Month: "Apr", Revenue: 2500},
	{Month: "May", Revenue: 2300},
	{Month: "Jun", Revenue: 3200},
	{Month: "Jul", Revenue: 3500},
	{Month: "Aug", Revenue: 3700},
	{Month: "Sep", Revenue: 2500},
	{Month: "Oct", Revenue: 2800},
	{Month: "Nov", Revenue: 3000},
	{Month: "Dec", Revenue: 4800},
}
