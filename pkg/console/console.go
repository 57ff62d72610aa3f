package console

import (
	"fmt"
	"strings"

	"github.com/avergara/d4d-dashboard-go/internal/shared/types"
	"github.com/pterm/pterm"
)

// Console es una implementación del ConsoleInterface.
type Console struct{}

// NewConsole crea una nueva Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime en la consola.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime una cadena formateada en la consola.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime en la consola con salto de línea.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra un mensaje informativo.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra un mensaje de advertencia.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra un mensaje de error.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra un mensaje de éxito.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle es una implementación del StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status crea un spinner de estado con el mensaje indicado.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Update actualiza el mensaje de estado.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop detiene el spinner de estado.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table es una implementación del TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable crea una nueva tabla.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn agrega una columna a la tabla.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow agrega una fila a la tabla.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza la tabla como string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayMetric muestra un indicador con su valor y una nota secundaria.
func (c *Console) DisplayMetric(label, value, delta string) {
	pterm.DefaultSection.WithLevel(2).Println(label)
	pterm.FgLightCyan.Println("  " + value)
	if delta != "" {
		pterm.FgGray.Println("  " + delta)
	}
}

// DisplayBars renderiza un gráfico horizontal de barras para las cantidades
// agrupadas, escalado a la barra más grande.
func (c *Console) DisplayBars(title string, bars []types.BarEntry) {
	maxQuantity := 0.0
	for _, bar := range bars {
		if bar.Quantity > maxQuantity {
			maxQuantity = bar.Quantity
		}
	}

	if maxQuantity == 0 {
		pterm.Warning.Printfln("%s: no doses registered for this grouping", title)
		return
	}

	tableData := pterm.TableData{
		{"Group", "Doses", ""},
	}
	for _, entry := range bars {
		barLength := int((entry.Quantity / maxQuantity) * 40)
		bar := strings.Repeat("█", barLength)
		tableData = append(tableData, []string{
			entry.Label,
			fmt.Sprintf("%.0f", entry.Quantity),
			pterm.FgCyan.Sprint(bar),
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)
	fmt.Println("\n" + panel)
}
