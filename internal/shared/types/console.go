package types

// ConsoleInterface define la interfaz para la salida por consola.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle
	ProgressWithTotal(total int) ProgressHandle

	CreateTable() TableInterface
}

// StatusHandle es una interfaz para actualizar un mensaje de estado.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// ProgressHandle es una interfaz para actualizar una barra de progreso.
type ProgressHandle interface {
	Increment()
	Stop()
}

// TableInterface define la interfaz para crear y pintar tablas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}
