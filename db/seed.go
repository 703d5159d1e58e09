package db

import (
	"fmt"
	"log"
	"os"

	"github.com/murekkephukuk/murekkep-api/models"
	"golang.org/x/crypto/bcrypt"
)

// Seed creates the admin account and the demo content set. It refuses to run
// against a non-empty database so a redeploy can't wipe edited content.
func Seed() error {
	var userCount int64
	if err := DB.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return fmt.Errorf("database zaten dolu, seed işlemi yapılmadı")
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@murekkephukuk.com"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 12)
	if err != nil {
		return err
	}
	if err := DB.Create(&models.User{
		Name:     "Admin",
		Email:    adminEmail,
		Password: string(hashed),
	}).Error; err != nil {
		return err
	}

	if err := DB.Create(&models.SiteSettings{
		SiteName:       "Mürekkep Hukuk",
		SiteTitle:      "Mürekkep Hukuk - Adaletin Kalemi",
		Description:    "İstanbul merkezli, ulusal ve uluslararası hukuki danışmanlık hizmetleri sunan köklü hukuk büromuz, müvekkillerimize en yüksek standartta profesyonel destek sağlamaktadır.",
		Logo:           "/assets/murekkep-logo-saydam.png",
		PrimaryColor:   "#c19a6b",
		SecondaryColor: "#243b53",
		FooterText:     "© 2025 Mürekkep Hukuk Bürosu. Tüm hakları saklıdır.",
		SocialMedia: models.JSONMap{
			"linkedin":  "https://linkedin.com/company/murekkep-hukuk",
			"twitter":   "https://twitter.com/murekkephukuk",
			"instagram": "https://instagram.com/murekkephukuk",
		},
		SectionVisibility: models.JSONMap{
			"hero":         true,
			"services":     true,
			"about":        true,
			"team":         true,
			"testimonials": true,
			"blog":         true,
			"contact":      true,
		},
	}).Error; err != nil {
		return err
	}

	if err := DB.Create(&models.HeroSection{
		Title:       "Adaletin Kalemi",
		Subtitle:    "Mürekkep Hukuk Bürosu",
		Description: "Hukuki haklarınız için güvenilir, profesyonel ve etkili çözümler sunuyoruz. 25 yıllık tecrübemizle yanınızdayız.",
		ButtonText:  "Randevu Al",
		ButtonLink:  "#appointment",
		Logo:        "/assets/murekkep-logo-saydam.png",
		LogoWidth:   200,
		LogoHeight:  200,
		ShowButton:  true,
		Active:      true,
	}).Error; err != nil {
		return err
	}

	// Hero carousel clips 1.mp4 .. 21.mp4
	for i := 1; i <= 21; i++ {
		if err := DB.Create(&models.HeroVideo{
			FileName: fmt.Sprintf("%d.mp4", i),
			Order:    i - 1,
			Active:   true,
		}).Error; err != nil {
			return err
		}
	}

	services := []models.Service{
		{
			Title:       "Ticaret Hukuku",
			Description: "Şirket kuruluşu, birleşme ve devirler, ortaklık anlaşmazlıkları, ticari sözleşmeler ve ticari dava süreçlerinde kapsamlı hukuki danışmanlık ve temsil hizmetleri sunuyoruz.",
			Icon:        "Scale",
			Order:       0,
			Active:      true,
		},
		{
			Title:       "Ceza Hukuku",
			Description: "Ceza davalarında müdafi ve vekil sıfatıyla temsil, soruşturma aşamasında hukuki destek, tutuklama itirazları ve tüm ceza hukuku süreçlerinde profesyonel savunma hizmeti.",
			Icon:        "Shield",
			Order:       1,
			Active:      true,
		},
		{
			Title:       "Aile Hukuku",
			Description: "Boşanma davaları, velayet hukuku, nafaka, mal paylaşımı, nişan ve evlilik sözleşmeleri konularında hassas ve güvenilir hukuki danışmanlık ve temsil hizmeti.",
			Icon:        "Users",
			Order:       2,
			Active:      true,
		},
		{
			Title:       "İş ve Sosyal Güvenlik Hukuku",
			Description: "İş sözleşmeleri, işçi-işveren uyuşmazlıkları, kıdem ve ihbar tazminatları, SGK işlemleri ve iş kazası tazminat davaları konusunda uzman hukuki destek.",
			Icon:        "Briefcase",
			Order:       3,
			Active:      true,
		},
	}
	for _, service := range services {
		if err := DB.Create(&service).Error; err != nil {
			return err
		}
	}

	if err := DB.Create(&models.AboutSection{
		Title:   "Mürekkep Hukuk Bürosu",
		Content: "Mürekkep Hukuk Bürosu, 2000 yılında İstanbul'da kurulmuş olup, 25 yıllık köklü geçmişi ile Türkiye'nin önde gelen hukuk bürolarından biridir.",
		Mission: "Adaleti, dürüstlüğü ve profesyonelliği ön planda tutarak müvekkillerimize en yüksek standartta hukuki hizmet sunmak.",
		Vision:  "Türkiye'nin en güvenilir ve tercih edilen hukuk bürolarından biri olmak.",
		Values:  models.StringList{"Dürüstlük ve Şeffaflık", "Profesyonellik ve Uzmanlık", "Müvekkil Memnuniyeti", "Gizlilik ve Güven"},
		Active:  true,
	}).Error; err != nil {
		return err
	}

	if err := DB.Create(&models.ContactInfo{
		Address:      "Nispetiye Caddesi No: 12/5, Levent, Beşiktaş, İstanbul",
		Phone:        "+90 212 555 01 00",
		Email:        "info@murekkephukuk.com",
		WorkingHours: "Pazartesi - Cuma: 09:00 - 18:00\nCumartesi: 10:00 - 14:00 (Randevu ile)",
		MapURL:       "https://maps.google.com/?q=Levent,Istanbul",
	}).Error; err != nil {
		return err
	}

	log.Println("✅ Seed data created")
	return nil
}
