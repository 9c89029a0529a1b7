package snql

// Example is a ready-made query shown to users as a starting point.
type Example struct {
	Label string `json:"label"`
	Query string `json:"query"`
}

// Examples returns the built-in example queries. Each call returns a fresh
// slice.
func Examples() []Example {
	return []Example{
		{Label: "basic select", Query: "get name, email from users"},
		{Label: "count records", Query: "get count of id from users where age is greater than 30"},
		{Label: "join tables", Query: "get users.name, orders.amount from users join orders on users.id = orders.user_id"},
		{Label: "aggregate functions", Query: "get avg of salary from users group by department"},
		{Label: "filter, sort and limit", Query: "get name, email from users where age is greater than 25 order by name limit 5"},
		{Label: "join with condition", Query: "get users.name, orders.amount from users join orders on users.id = orders.user_id where orders.amount is greater than 100"},
		{Label: "group statistics", Query: `get count of id, avg of salary from users where department is equal to "Engineering" group by department`},
		{Label: "top spenders", Query: "get users.name, sum of orders.amount from users left join orders on users.id = orders.user_id group by users.id order by sum of orders.amount desc limit 3"},
	}
}
