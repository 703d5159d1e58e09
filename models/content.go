package models

import (
	"gorm.io/gorm"
)

// HeroSection is the landing banner. A single active row is served publicly.
type HeroSection struct {
	gorm.Model
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	ButtonText  string `json:"buttonText"`
	ButtonLink  string `json:"buttonLink"`
	Logo        string `json:"logo"`
	LogoWidth   int    `json:"logoWidth"`
	LogoHeight  int    `json:"logoHeight"`
	ShowButton  bool   `json:"showButton" gorm:"default:true"`
	Active      bool   `json:"active" gorm:"default:true"`
}

// HeroVideo is one clip of the background carousel, played in Order.
type HeroVideo struct {
	gorm.Model
	FileName string `json:"fileName"`
	Order    int    `json:"order" gorm:"column:sort_order"`
	Active   bool   `json:"active" gorm:"default:true"`
}

// Service is a practice area shown on the services grid.
type Service struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	Details     string `json:"details"`
	Icon        string `json:"icon"`
	Order       int    `json:"order" gorm:"column:sort_order"`
	Active      bool   `json:"active" gorm:"default:true"`
}

type AboutSection struct {
	gorm.Model
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Mission string     `json:"mission"`
	Vision  string     `json:"vision"`
	Values  StringList `json:"values" gorm:"type:jsonb"`
	Active  bool       `json:"active" gorm:"default:true"`
}

type TeamMember struct {
	gorm.Model
	Name   string `json:"name"`
	Title  string `json:"title"`
	Bio    string `json:"bio"`
	Image  string `json:"image"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Order  int    `json:"order" gorm:"column:sort_order"`
	Active bool   `json:"active" gorm:"default:true"`
}

type Testimonial struct {
	gorm.Model
	Name    string `json:"name"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Rating  int    `json:"rating" gorm:"default:5"`
	Order   int    `json:"order" gorm:"column:sort_order"`
	Active  bool   `json:"active" gorm:"default:true"`
}

type BlogPost struct {
	gorm.Model
	Title     string     `json:"title"`
	Slug      string     `json:"slug" gorm:"uniqueIndex"`
	Category  string     `json:"category"`
	Excerpt   string     `json:"excerpt"`
	Content   string     `json:"content"`
	Image     string     `json:"image"`
	Tags      StringList `json:"tags" gorm:"type:jsonb"`
	Published bool       `json:"published" gorm:"default:false"`
}

// ContactInfo is the single office contact card in the footer and contact
// section.
type ContactInfo struct {
	gorm.Model
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	WorkingHours string `json:"workingHours"`
	MapURL       string `json:"mapUrl"`
}
