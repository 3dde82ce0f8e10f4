package app

// Shutdown gracefully shuts down all application components.
func (a *Application) Shutdown() {
	if a.DB != nil {
		a.DB.Close()
	}
}
