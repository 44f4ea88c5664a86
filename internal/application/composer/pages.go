package composer

import (
	"maps"

	"github.com/jhoicas/partner-portal/internal/application/demo"
	"github.com/jhoicas/partner-portal/internal/application/guard"
	"github.com/jhoicas/partner-portal/internal/domain/access"
	"github.com/jhoicas/partner-portal/internal/domain/entity"
)

func (c *Composer) registerPages() map[string][]item {
	return map[string][]item{
		guard.PathHome: {
			one(blockSpec{id: "navbar", slot: SlotHeader, props: tenantProps}),
			one(blockSpec{id: "hero", slot: SlotMain, module: entity.ModuleHeroSection, props: tenantProps}),
			one(blockSpec{id: "feature_list", slot: SlotMain, module: entity.ModuleFeatureList}),
			one(blockSpec{id: "menu_grid", slot: SlotMain, module: entity.ModuleMenuGrid}),
			one(blockSpec{id: "property_grid", slot: SlotMain, module: entity.ModulePropertyGrid}),
			one(blockSpec{id: "booking_widget", slot: SlotMain, module: entity.ModuleBookingSystem}),
			one(blockSpec{id: "pricing", slot: SlotMain, module: entity.ModulePricingTable, props: pricingProps}),
			one(blockSpec{id: "testimonials", slot: SlotMain, module: entity.ModuleTestimonials}),
			one(blockSpec{id: "contact_form", slot: SlotMain, module: entity.ModuleContactForm}),
			one(blockSpec{id: "chat_widget", slot: SlotOverlay, module: entity.ModuleChatWidget}),
			one(blockSpec{id: "footer", slot: SlotFooter, props: tenantProps}),
		},
		guard.PathLogin: {
			one(blockSpec{id: "auth_form", slot: SlotMain, props: staticProps(map[string]any{"mode": "login"})}),
		},
		guard.PathRegister: {
			one(blockSpec{id: "auth_form", slot: SlotMain, props: staticProps(map[string]any{"mode": "register"})}),
		},
		guard.PathDashboard: shell(
			one(blockSpec{id: "welcome", slot: SlotMain, props: welcomeProps}),
			one(blockSpec{id: "plan_summary", slot: SlotMain, props: planSummaryProps}),
			one(blockSpec{id: "system_status", slot: SlotAside, props: statusProps}),
			one(blockSpec{id: "platform_overview", slot: SlotMain, req: access.Admin()}),
			one(blockSpec{id: "usage_chart", slot: SlotMain, req: access.Plan(entity.PlanMotor)}),
		),
		guard.PathAutomation: shell(
			either(exclusiveSpec{
				slot:     SlotAutomationPanel,
				primary:  blockSpec{id: "automation_panel", req: capability(access.CapAccessAutomation)},
				fallback: blockSpec{id: "upgrade_prompt", props: upgradeProps(access.CapAccessAutomation)},
			}),
			one(blockSpec{id: "content_planner", slot: SlotMain, req: capability(access.CapAIContentGeneration)}),
			one(blockSpec{id: "campaign_builder", slot: SlotMain, req: capability(access.CapContentCampaigns)}),
		),
		guard.PathDataMining: shell(
			either(exclusiveSpec{
				slot:     SlotMiningPanel,
				primary:  blockSpec{id: "mining_console", req: capability(access.CapAccessMining)},
				fallback: blockSpec{id: "upgrade_prompt", props: upgradeProps(access.CapAccessMining)},
			}),
			one(blockSpec{id: "market_trends_chart", slot: SlotMain, req: capability(access.CapAccessMining)}),
			one(blockSpec{id: "competitor_table", slot: SlotMain, req: capability(access.CapAccessMining)}),
		),
		guard.PathSettings: shell(
			one(blockSpec{id: "profile_panel", slot: SlotMain, props: profileProps}),
			one(blockSpec{id: "billing_panel", slot: SlotMain, props: billingProps}),
			either(exclusiveSpec{
				slot:     SlotSettingsAdmin,
				primary:  blockSpec{id: "tenant_settings", req: access.Admin(), props: tenantProps},
				fallback: blockSpec{id: "contact_admin"},
			}),
			one(blockSpec{id: "api_keys_panel", slot: SlotMain, req: capability(access.CapManagePlatform)}),
		),
		guard.PathSoftware: shell(
			either(exclusiveSpec{
				slot:     SlotDeployAction,
				primary:  blockSpec{id: "deploy_application", req: capability(access.CapDeployApplication)},
				fallback: blockSpec{id: "upgrade_to_partner", props: upgradeProps(access.CapDeployApplication)},
			}),
			dyn(catalogCards),
		),
		guard.PathDemo: {
			one(blockSpec{id: "demo_header", slot: SlotHeader, props: demoHeaderProps}),
			one(blockSpec{id: "demo_role_switcher", slot: SlotNav, props: switcherProps}),
			dyn(demoView),
			either(exclusiveSpec{
				slot:     SlotEditorAction,
				primary:  blockSpec{id: "open_editor", req: capability(access.CapOpenEditor), props: demoRefProps},
				fallback: blockSpec{id: "ask_assistant", props: demoRefProps},
			}),
		},
	}
}

// shell antepone la navegación lateral común a las páginas autenticadas.
func shell(items ...item) []item {
	return append([]item{
		one(blockSpec{id: "sidebar", slot: SlotNav, props: sidebarProps}),
		one(blockSpec{id: "admin_badge", slot: SlotHeader, req: access.Admin()}),
	}, items...)
}

func capability(c access.Capability) access.Requirement {
	req, ok := access.RequirementFor(c)
	if !ok {
		// Capacidad no registrada: requisito imposible de cumplir.
		return access.Requirement{Policy: access.Policy(-1)}
	}
	return req
}

func staticProps(p map[string]any) propsFunc {
	return func(*composeCtx) map[string]any { return maps.Clone(p) }
}

func tenantProps(c *composeCtx) map[string]any {
	return map[string]any{
		"tenant_id":    c.in.Tenant.ID,
		"display_name": c.in.Tenant.DisplayName,
	}
}

func pricingProps(c *composeCtx) map[string]any {
	plans := make([]map[string]any, 0)
	for _, p := range c.catalog.Plans() {
		plans = append(plans, map[string]any{
			"tier":          p.Tier.String(),
			"name":          p.Name,
			"monthly_price": p.MonthlyPrice.StringFixed(2),
			"currency":      p.Currency,
			"highlights":    p.Highlights,
		})
	}
	return map[string]any{"plans": plans}
}

func sidebarProps(c *composeCtx) map[string]any {
	links := []string{guard.PathDashboard}
	if c.allows(access.CapAccessAutomation) {
		links = append(links, guard.PathAutomation)
	}
	if c.allows(access.CapAccessMining) {
		links = append(links, guard.PathDataMining)
	}
	links = append(links, guard.PathSoftware, guard.PathSettings)
	return map[string]any{"links": links}
}

func welcomeProps(c *composeCtx) map[string]any {
	if c.identity == nil {
		return nil
	}
	name := c.identity.FullName
	if name == "" {
		name = c.identity.Email
	}
	return map[string]any{"name": name}
}

func planSummaryProps(c *composeCtx) map[string]any {
	if c.identity == nil {
		return map[string]any{"loading": true}
	}
	caps := access.Granted(c.identity)
	names := make([]string, len(caps))
	for i, cp := range caps {
		names[i] = string(cp)
	}
	return map[string]any{
		"plan_tier":    c.identity.PlanTier.String(),
		"chat_quota":   access.ChatQuota(c.identity.PlanTier),
		"capabilities": names,
	}
}

func statusProps(c *composeCtx) map[string]any {
	status := "offline"
	if c.in.BackendOnline {
		status = "online"
	}
	return map[string]any{"backend": status}
}

func profileProps(c *composeCtx) map[string]any {
	if c.identity == nil {
		return map[string]any{"loading": true}
	}
	return map[string]any{
		"email":     c.identity.Email,
		"full_name": c.identity.FullName,
		"is_active": c.identity.IsActive,
	}
}

func billingProps(c *composeCtx) map[string]any {
	p := pricingProps(c)
	if c.identity != nil {
		p["current_tier"] = c.identity.PlanTier.String()
	}
	return p
}

func upgradeProps(cp access.Capability) propsFunc {
	return func(*composeCtx) map[string]any {
		req, _ := access.RequirementFor(cp)
		p := map[string]any{"capability": string(cp)}
		if req.Policy == access.PolicyPlan {
			p["required_tier"] = req.Tier.String()
		}
		return p
	}
}

func catalogCards(c *composeCtx) []Block {
	entries := OrderCatalog(c.catalog.List())
	blocks := make([]Block, 0, len(entries))
	for _, e := range entries {
		blocks = append(blocks, Block{
			ID:   "catalog_card",
			Slot: SlotCards,
			Props: map[string]any{
				"app_id":      e.ID,
				"name":        e.Name,
				"sector":      e.Sector,
				"description": e.Description,
				"icon":        e.IconRef,
				"gradient":    e.GradientRef,
				"demo_url":    e.DemoURL,
				"features":    e.Features,
				"flagship":    e.IsFlagship,
			},
		})
	}
	return blocks
}

func demoHeaderProps(c *composeCtx) map[string]any {
	return map[string]any{
		"app_id":   c.entry.ID,
		"name":     c.entry.Name,
		"sector":   c.entry.Sector,
		"gradient": c.entry.GradientRef,
	}
}

func switcherProps(c *composeCtx) map[string]any {
	s := demo.SwitcherFor(c.in.DemoRole)
	return map[string]any{"roles": s.Roles, "active": s.Active}
}

func demoView(c *composeCtx) []Block {
	v := demo.ViewFor(c.in.DemoRole, c.entry)
	return []Block{{
		ID:   v.BlockID,
		Slot: SlotMain,
		Props: map[string]any{
			"headline": v.Headline,
			"sections": v.Sections,
			"actions":  v.Actions,
			"features": c.entry.Features,
		},
	}}
}

func demoRefProps(c *composeCtx) map[string]any {
	return map[string]any{"app_id": c.appID}
}

func (c *composeCtx) allows(cp access.Capability) bool {
	return c.identity != nil && access.Allows(c.identity, cp)
}
