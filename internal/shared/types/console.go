package types

// ConsoleInterface define la interfaz para la salida en consola.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle

	CreateTable() TableInterface
	DisplayBars(title string, bars []BarEntry)
	DisplayMetric(label, value, delta string)
}

// StatusHandle es una interfaz para actualizar un mensaje de estado.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// TableInterface define la interfaz para crear y manipular tablas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// BarEntry representa una barra en un gráfico horizontal de cantidades.
type BarEntry struct {
	Label    string  `json:"label"`
	Quantity float64 `json:"quantity"`
}
