package cli

// RunTemplates prints the style template catalog.
func (c *Cli) RunTemplates() error {
	return c.render("templates", templatesTemplate, c.catalog.All())
}

// RunVersion prints build information.
func (c *Cli) RunVersion(info BuildInfo) error {
	return c.render("version", versionTemplate, info)
}
