package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styling
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#30d158")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#ff453a")).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0a84ff"))
)

// Model defines the application state
type Model struct {
	mainMenu    list.Model
	inputField  textinput.Model
	spinner     spinner.Model
	client      *ApiClient
	currentView string
	inputFlow   string
	detailTitle string
	detailBody  string
	loading     bool
	errText     string
}

// item represents a list item
type item struct {
	title, desc string
}

// FilterValue implements list.Item interface
func (i item) FilterValue() string { return i.title }

// Title implements list.Item interface
func (i item) Title() string { return i.title }

// Description implements list.Item interface
func (i item) Description() string { return i.desc }

// Messages delivered by API commands
type dataMsg struct {
	title, body string
}

type errMsg struct {
	err error
}

// Input flows and their comma-separated field prompts
var flowPrompts = map[string]string{
	"reserve": "name, phone, party size, date (YYYY-MM-DD), time (HH:MM)",
	"order":   "table number, customer count",
	"line":    "order id, item id, quantity",
	"status":  "order id, new status (pending/cooking/ready/served/paid)",
	"report":  "date (YYYY-MM-DD, empty for today)",
}

// Initialize the model
func initialModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	items := []list.Item{
		item{title: "Menu", desc: "Display the menu by category"},
		item{title: "Free Tables", desc: "Display unoccupied tables"},
		item{title: "Make Reservation", desc: "Seat a party at a suitable table"},
		item{title: "Create Order", desc: "Open an order for an occupied table"},
		item{title: "Add Order Line", desc: "Add an item to an order"},
		item{title: "Update Order Status", desc: "Advance an order; paid frees the table"},
		item{title: "Active Orders", desc: "Orders not yet paid"},
		item{title: "Today's Reservations", desc: "Reservations for today"},
		item{title: "Daily Report", desc: "Revenue and completed orders"},
		item{title: "Exit", desc: "Exit the application"},
	}

	mainMenu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	mainMenu.Title = "Front of House"

	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 60

	return Model{
		mainMenu:    mainMenu,
		inputField:  ti,
		spinner:     s,
		client:      NewApiClient(),
		currentView: "main",
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.mainMenu.SetSize(msg.Width-h, msg.Height-v)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.currentView != "main" {
				m.currentView = "main"
				m.errText = ""
				return m, nil
			}
		case "enter":
			switch m.currentView {
			case "main":
				return m.selectMenuItem()
			case "input":
				return m.submitInput()
			}
		}

	case dataMsg:
		m.loading = false
		m.currentView = "detail"
		m.detailTitle = msg.title
		m.detailBody = msg.body
		return m, nil

	case errMsg:
		m.loading = false
		m.errText = msg.err.Error()
		if m.currentView != "input" {
			m.currentView = "main"
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.currentView {
	case "main":
		m.mainMenu, cmd = m.mainMenu.Update(msg)
	case "input":
		m.inputField, cmd = m.inputField.Update(msg)
	}
	return m, cmd
}

// selectMenuItem dispatches the highlighted main-menu entry.
func (m Model) selectMenuItem() (tea.Model, tea.Cmd) {
	selected, ok := m.mainMenu.SelectedItem().(item)
	if !ok {
		return m, nil
	}
	m.errText = ""

	switch selected.title {
	case "Menu":
		m.loading = true
		return m, m.fetchMenu
	case "Free Tables":
		m.loading = true
		return m, m.fetchFreeTables
	case "Active Orders":
		m.loading = true
		return m, m.fetchActiveOrders
	case "Today's Reservations":
		m.loading = true
		return m, m.fetchReservations
	case "Daily Report":
		return m.startInput("report")
	case "Make Reservation":
		return m.startInput("reserve")
	case "Create Order":
		return m.startInput("order")
	case "Add Order Line":
		return m.startInput("line")
	case "Update Order Status":
		return m.startInput("status")
	case "Exit":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) startInput(flow string) (tea.Model, tea.Cmd) {
	m.currentView = "input"
	m.inputFlow = flow
	m.inputField.SetValue("")
	m.inputField.Focus()
	return m, textinput.Blink
}

// submitInput parses the comma-separated fields for the active flow and
// fires the matching API command.
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	fields := strings.Split(m.inputField.Value(), ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	m.errText = ""

	switch m.inputFlow {
	case "reserve":
		if len(fields) != 5 {
			m.errText = "expected: " + flowPrompts["reserve"]
			return m, nil
		}
		size, err := strconv.Atoi(fields[2])
		if err != nil {
			m.errText = "party size must be a number"
			return m, nil
		}
		name, phone, date, timeSlot := fields[0], fields[1], fields[3], fields[4]
		m.loading = true
		return m, func() tea.Msg {
			res, err := m.client.CreateReservation(name, phone, size, date, timeSlot)
			if err != nil {
				return errMsg{err}
			}
			return dataMsg{"Reservation Confirmed", fmt.Sprintf("ID: %s\nTable: %d\n%s %s for %d",
				res.ID, res.TableNumber, res.Date, res.Time, res.PartySize)}
		}
	case "order":
		if len(fields) != 2 {
			m.errText = "expected: " + flowPrompts["order"]
			return m, nil
		}
		table, err1 := strconv.Atoi(fields[0])
		count, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			m.errText = "table number and customer count must be numbers"
			return m, nil
		}
		m.loading = true
		return m, func() tea.Msg {
			order, err := m.client.OpenOrder(table, count)
			if err != nil {
				return errMsg{err}
			}
			return dataMsg{"Order Opened", fmt.Sprintf("ID: %s\nTable: %d\nStatus: %s",
				order.ID, order.TableNumber, order.Status)}
		}
	case "line":
		if len(fields) != 3 {
			m.errText = "expected: " + flowPrompts["line"]
			return m, nil
		}
		qty, err := strconv.Atoi(fields[2])
		if err != nil {
			m.errText = "quantity must be a number"
			return m, nil
		}
		orderID, itemID := fields[0], fields[1]
		m.loading = true
		return m, func() tea.Msg {
			order, err := m.client.AddOrderLine(orderID, itemID, qty)
			if err != nil {
				return errMsg{err}
			}
			return dataMsg{"Line Added", fmt.Sprintf("Order %s total: $%.2f (%d lines)",
				order.ID, order.Total, len(order.Lines))}
		}
	case "status":
		if len(fields) != 2 {
			m.errText = "expected: " + flowPrompts["status"]
			return m, nil
		}
		orderID, status := fields[0], fields[1]
		m.loading = true
		return m, func() tea.Msg {
			previous, err := m.client.AdvanceStatus(orderID, status)
			if err != nil {
				return errMsg{err}
			}
			return dataMsg{"Status Updated", fmt.Sprintf("Order %s: %s -> %s", orderID, previous, status)}
		}
	case "report":
		date := fields[0]
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}
		m.loading = true
		return m, func() tea.Msg {
			report, err := m.client.GetDailyReport(date)
			if err != nil {
				return errMsg{err}
			}
			return dataMsg{"Daily Report - " + report.Date, fmt.Sprintf(
				"Total Revenue: $%.2f\nOrders Completed: %d\nEstimated Customers Served: %d\nAverage Order Value: $%.2f",
				report.Revenue, report.OrdersCompleted, report.CustomersServed, report.AverageOrderValue)}
		}
	}
	return m, nil
}

// API fetch commands

func (m Model) fetchMenu() tea.Msg {
	sections, err := m.client.GetMenu()
	if err != nil {
		return errMsg{err}
	}
	var b strings.Builder
	for _, section := range sections {
		b.WriteString(sectionStyle.Render("--- "+section.Category+" ---") + "\n")
		for _, it := range section.Items {
			fmt.Fprintf(&b, "%s - %-25s - $%.2f (%d min)\n", it.ID, it.Name, it.Price, it.PrepTime)
		}
		b.WriteString("\n")
	}
	if len(sections) == 0 {
		b.WriteString("No items available.")
	}
	return dataMsg{"Menu", b.String()}
}

func (m Model) fetchFreeTables() tea.Msg {
	tables, err := m.client.GetFreeTables()
	if err != nil {
		return errMsg{err}
	}
	var b strings.Builder
	for _, t := range tables {
		fmt.Fprintf(&b, "Table %d - seats %d - %s", t.Number, t.Capacity, t.Location)
		if t.Features != "" {
			fmt.Fprintf(&b, " (%s)", t.Features)
		}
		b.WriteString("\n")
	}
	if len(tables) == 0 {
		b.WriteString("No available tables at the moment.")
	}
	return dataMsg{"Available Tables", b.String()}
}

func (m Model) fetchActiveOrders() tea.Msg {
	orders, err := m.client.GetActiveOrders()
	if err != nil {
		return errMsg{err}
	}
	var b strings.Builder
	for _, o := range orders {
		fmt.Fprintf(&b, "%s - table %d - %s - $%.2f\n", o.ID, o.TableNumber, o.Status, o.Total)
		for _, line := range o.Lines {
			fmt.Fprintf(&b, "  %s x%d @ $%.2f\n", line.ItemID, line.Quantity, line.UnitPrice)
		}
	}
	if len(orders) == 0 {
		b.WriteString("No active orders.")
	}
	return dataMsg{"Active Orders", b.String()}
}

func (m Model) fetchReservations() tea.Msg {
	today := time.Now().Format("2006-01-02")
	reservations, err := m.client.GetReservations(today)
	if err != nil {
		return errMsg{err}
	}
	var b strings.Builder
	for _, r := range reservations {
		fmt.Fprintf(&b, "%s - %s (%s) - party of %d - table %d at %s\n",
			r.ID, r.CustomerName, r.Phone, r.PartySize, r.TableNumber, r.Time)
		if r.SpecialRequests != "" {
			fmt.Fprintf(&b, "  Requests: %s\n", r.SpecialRequests)
		}
	}
	if len(reservations) == 0 {
		b.WriteString("No reservations for today.")
	}
	return dataMsg{"Reservations for " + today, b.String()}
}

// View implements tea.Model
func (m Model) View() string {
	if m.loading {
		return docStyle.Render(fmt.Sprintf("%s Working...", m.spinner.View()))
	}

	switch m.currentView {
	case "detail":
		view := titleStyle.Render(m.detailTitle) + "\n\n" + m.detailBody + "\n" +
			successStyle.Render("esc") + " back to menu"
		return docStyle.Render(view)
	case "input":
		view := titleStyle.Render("Enter: "+flowPrompts[m.inputFlow]) + "\n\n" + m.inputField.View() + "\n"
		if m.errText != "" {
			view += "\n" + errorStyle.Render(m.errText) + "\n"
		}
		view += "\n" + successStyle.Render("enter") + " submit  " + successStyle.Render("esc") + " cancel"
		return docStyle.Render(view)
	default:
		view := docStyle.Render(m.mainMenu.View())
		if m.errText != "" {
			view += "\n" + docStyle.Render(errorStyle.Render(m.errText))
		}
		return view
	}
}

func main() {
	if _, err := NewApiClient().CheckHealth(); err != nil {
		fmt.Printf("Warning: API server is not reachable: %v\n", err)
	}

	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
