package service

import (
	"errors"
	"reflect"
	"testing"

	"github.com/iWEX-Infomatics/iWebsite/internal/core"
)

func TestSettings_AbsentRecordMatchesEmptyRecord(t *testing.T) {
	// No record at all
	absent := NewWebsiteService(&fakeSettingsRepo{found: false}, &fakeContentRepo{}, &fakeCustomerRepo{})
	fromAbsent, err := absent.Settings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A record exists but every field was left empty (chatbot enabled
	// is the admin-UI default for a fresh record)
	empty := NewWebsiteService(&fakeSettingsRepo{
		settings: &core.WebsiteSettings{EnableChatbot: true},
		found:    true,
	}, &fakeContentRepo{}, &fakeCustomerRepo{})
	fromEmpty, err := empty.Settings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(fromAbsent, fromEmpty) {
		t.Errorf("absent and empty settings diverged:\nabsent: %+v\nempty:  %+v", fromAbsent, fromEmpty)
	}

	if fromAbsent.Branding.CompanyName != core.DefaultCompanyName {
		t.Errorf("company name = %q; want default %q", fromAbsent.Branding.CompanyName, core.DefaultCompanyName)
	}
	if fromAbsent.Stats.Clients != core.DefaultStatClients {
		t.Errorf("stats.clients = %d; want default %d", fromAbsent.Stats.Clients, core.DefaultStatClients)
	}
	if fromAbsent.Contact.Email != core.DefaultContactEmail {
		t.Errorf("contact.email = %q; want default %q", fromAbsent.Contact.Email, core.DefaultContactEmail)
	}
	if !fromAbsent.Chatbot.Enabled {
		t.Error("chatbot should default to enabled")
	}
}

func TestSettings_StoredValuesWin(t *testing.T) {
	svc := NewWebsiteService(&fakeSettingsRepo{
		settings: &core.WebsiteSettings{
			CompanyName: "Acme Consulting",
			StatClients: 7,
			HeroTitle:   "Hello",
		},
		found: true,
	}, &fakeContentRepo{}, &fakeCustomerRepo{})

	payload, err := svc.Settings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Branding.CompanyName != "Acme Consulting" {
		t.Errorf("company name = %q; want stored value", payload.Branding.CompanyName)
	}
	if payload.Stats.Clients != 7 {
		t.Errorf("stats.clients = %d; want 7", payload.Stats.Clients)
	}
	if payload.Hero.Title != "Hello" {
		t.Errorf("hero.title = %q; want Hello", payload.Hero.Title)
	}
	// Untouched fields still fall back
	if payload.Hero.CtaText != core.DefaultHeroCtaText {
		t.Errorf("hero.cta_text = %q; want default", payload.Hero.CtaText)
	}
}

func TestSettings_StoreErrorPropagates(t *testing.T) {
	svc := NewWebsiteService(&fakeSettingsRepo{err: errors.New("db down")}, &fakeContentRepo{}, &fakeCustomerRepo{})
	if _, err := svc.Settings(); err == nil {
		t.Fatal("expected error")
	}
}

func TestServices_FeaturesAttachedInOrder(t *testing.T) {
	content := &fakeContentRepo{
		services: []*core.Service{
			{ID: "svc1", ServiceName: "ERPNext Implementation"},
			{ID: "svc2", ServiceName: "Support"},
		},
		features: map[string][]*core.ServiceFeature{
			"svc1": {
				{Title: "Analysis"},
				{Title: "Migration"},
				{Title: "Go-live"},
			},
		},
	}
	svc := NewWebsiteService(&fakeSettingsRepo{}, content, &fakeCustomerRepo{})

	services, err := svc.Services()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(services) != 2 {
		t.Fatalf("got %d services; want 2", len(services))
	}
	if len(services[0].Features) != 3 {
		t.Fatalf("got %d features; want 3", len(services[0].Features))
	}
	want := []string{"Analysis", "Migration", "Go-live"}
	for i, feature := range services[0].Features {
		if feature.Title != want[i] {
			t.Errorf("feature[%d] = %q; want %q", i, feature.Title, want[i])
		}
	}
	if len(services[1].Features) != 0 {
		t.Errorf("svc2 should have no features, got %d", len(services[1].Features))
	}
}

func TestFAQs_GroupingInvariants(t *testing.T) {
	content := &fakeContentRepo{
		faqs: []*core.FAQ{
			{ID: "f1", Category: "Implementation", Question: "Q1"},
			{ID: "f2", Category: "", Question: "Q2"},
			{ID: "f3", Category: "Implementation", Question: "Q3"},
			{ID: "f4", Category: "Pricing", Question: "Q4"},
		},
	}
	svc := NewWebsiteService(&fakeSettingsRepo{}, content, &fakeCustomerRepo{})

	index, err := svc.FAQs("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	total := 0
	for _, group := range index.Grouped {
		total += len(group)
	}
	if total != len(index.FAQs) {
		t.Errorf("grouped total %d != flat total %d", total, len(index.FAQs))
	}

	wantCategories := []string{"Implementation", "General", "Pricing"}
	if !reflect.DeepEqual(index.Categories, wantCategories) {
		t.Errorf("categories = %v; want %v (first-seen order)", index.Categories, wantCategories)
	}

	if len(index.Grouped) != len(index.Categories) {
		t.Errorf("grouped has %d keys; categories has %d", len(index.Grouped), len(index.Categories))
	}
	for _, cat := range index.Categories {
		if _, ok := index.Grouped[cat]; !ok {
			t.Errorf("category %q missing from grouped view", cat)
		}
	}

	general := index.Grouped["General"]
	if len(general) != 1 || general[0].ID != "f2" {
		t.Errorf("uncategorized FAQ should land in General, got %+v", general)
	}
}

func TestFAQs_CategoryFilterPassedThrough(t *testing.T) {
	content := &fakeContentRepo{
		faqs: []*core.FAQ{
			{ID: "f1", Category: "Pricing"},
			{ID: "f2", Category: "Implementation"},
		},
	}
	svc := NewWebsiteService(&fakeSettingsRepo{}, content, &fakeCustomerRepo{})

	index, err := svc.FAQs("Pricing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content.faqCategoryArg != "Pricing" {
		t.Errorf("repo received category %q; want Pricing", content.faqCategoryArg)
	}
	if len(index.FAQs) != 1 || index.FAQs[0].ID != "f1" {
		t.Errorf("unexpected filtered result: %+v", index.FAQs)
	}
}

func TestFAQs_EmptyResult(t *testing.T) {
	svc := NewWebsiteService(&fakeSettingsRepo{}, &fakeContentRepo{}, &fakeCustomerRepo{})

	index, err := svc.FAQs("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(index.FAQs) != 0 || len(index.Grouped) != 0 || len(index.Categories) != 0 {
		t.Errorf("expected empty views, got %+v", index)
	}
}

func TestClientLogos_CapHoldsAfterImageFilter(t *testing.T) {
	customers := &fakeCustomerRepo{
		customers: []*core.Customer{
			{ID: "c1", CustomerName: "A", Image: "a.png"},
			{ID: "c2", CustomerName: "B", Image: ""},
			{ID: "c3", CustomerName: "C", Image: "c.png"},
		},
	}
	svc := NewWebsiteService(&fakeSettingsRepo{
		settings: &core.WebsiteSettings{ShowClientLogos: true, MaxClientLogos: 3},
		found:    true,
	}, &fakeContentRepo{}, customers)

	logos, err := svc.ClientLogos()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if customers.lastLimit != 3 {
		t.Errorf("fetch limit = %d; want 3", customers.lastLimit)
	}
	// The imageless row is dropped, never backfilled
	if len(logos) != 2 {
		t.Fatalf("got %d logos; want 2", len(logos))
	}
	if len(logos) > 3 {
		t.Errorf("cap violated: %d > 3", len(logos))
	}
	if logos[0].Logo != "a.png" || logos[1].Logo != "c.png" {
		t.Errorf("unexpected logos: %+v", logos)
	}
}

func TestClientLogos_DisabledReturnsEmpty(t *testing.T) {
	customers := &fakeCustomerRepo{
		customers: []*core.Customer{{ID: "c1", Image: "a.png"}},
	}
	svc := NewWebsiteService(&fakeSettingsRepo{
		settings: &core.WebsiteSettings{ShowClientLogos: false},
		found:    true,
	}, &fakeContentRepo{}, customers)

	logos, err := svc.ClientLogos()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logos) != 0 {
		t.Errorf("expected empty result when disabled, got %d", len(logos))
	}
	if customers.calls != 0 {
		t.Error("customer store should not be queried when logos are disabled")
	}
}

func TestClientLogos_DefaultCapWhenSettingsAbsent(t *testing.T) {
	customers := &fakeCustomerRepo{}
	svc := NewWebsiteService(&fakeSettingsRepo{found: false}, &fakeContentRepo{}, customers)

	if _, err := svc.ClientLogos(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if customers.lastLimit != core.DefaultMaxClientLogos {
		t.Errorf("fetch limit = %d; want default %d", customers.lastLimit, core.DefaultMaxClientLogos)
	}
}

func TestContentListers_StoreErrorPropagates(t *testing.T) {
	content := &fakeContentRepo{err: errors.New("db down")}
	svc := NewWebsiteService(&fakeSettingsRepo{}, content, &fakeCustomerRepo{err: errors.New("db down")})

	if _, err := svc.Services(); err == nil {
		t.Error("Services: expected error")
	}
	if _, err := svc.FAQs(""); err == nil {
		t.Error("FAQs: expected error")
	}
	if _, err := svc.FAQCategories(); err == nil {
		t.Error("FAQCategories: expected error")
	}
	if _, err := svc.Testimonials(); err == nil {
		t.Error("Testimonials: expected error")
	}
	if _, err := svc.ClientLogos(); err == nil {
		t.Error("ClientLogos: expected error")
	}
}
