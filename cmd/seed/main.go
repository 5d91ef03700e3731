package main

import (
	"fmt"
	"time"

	"github.com/suvai-store/internal/config"
	"github.com/suvai-store/internal/constants"
	"github.com/suvai-store/internal/logger"
	"github.com/suvai-store/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	money := func(v float64) models.Money {
		return models.NewMoneyFromDecimal(decimal.NewFromFloat(v))
	}

	snacks := []models.SnackItem{
		{
			Name:         models.LocalizedText{TA: "இட்லி பொடி", EN: "Idli Podi"},
			Description:  models.LocalizedText{TA: "பாரம்பரிய முறையில் தயாரித்த இட்லி பொடி", EN: "Traditional gunpowder spice mix for idli and dosa"},
			Price:        money(120),
			Category:     constants.SnackCategoryPodi,
			QuantityUnit: constants.QuantityUnitGrams,
			Stock:        50,
			IsEnabled:    true,
			SortOrder:    100,
			Image:        "https://images.unsplash.com/photo-1589301760014-d929f3979dbc?w=800",
		},
		{
			Name:         models.LocalizedText{TA: "கறிவேப்பிலை பொடி", EN: "Curry Leaf Podi"},
			Description:  models.LocalizedText{TA: "கறிவேப்பிலை மற்றும் உளுந்து கலந்த பொடி", EN: "Curry leaves roasted with lentils and spices"},
			Price:        money(140),
			Category:     constants.SnackCategoryPodi,
			QuantityUnit: constants.QuantityUnitGrams,
			Stock:        40,
			IsEnabled:    true,
			SortOrder:    95,
		},
		{
			Name:         models.LocalizedText{TA: "மாங்காய் ஊறுகாய்", EN: "Mango Pickle"},
			Description:  models.LocalizedText{TA: "நாட்டு மாங்காயில் செய்த காரமான ஊறுகாய்", EN: "Tangy raw mango pickle in gingelly oil"},
			Price:        money(180),
			Category:     constants.SnackCategoryPickle,
			QuantityUnit: constants.QuantityUnitGrams,
			Stock:        35,
			IsEnabled:    true,
			SortOrder:    90,
		},
		{
			Name:         models.LocalizedText{TA: "முறுக்கு", EN: "Murukku"},
			Description:  models.LocalizedText{TA: "மொறுமொறுப்பான கை முறுக்கு", EN: "Crisp hand-twisted rice flour spirals"},
			Price:        money(90),
			Category:     constants.SnackCategorySnacks,
			QuantityUnit: constants.QuantityUnitPieces,
			Stock:        100,
			IsEnabled:    true,
			SortOrder:    85,
		},
		{
			Name:         models.LocalizedText{TA: "அதிரசம்", EN: "Adhirasam"},
			Description:  models.LocalizedText{TA: "வெல்லம் சேர்த்த பாரம்பரிய இனிப்பு", EN: "Traditional jaggery sweet made with rice flour"},
			Price:        money(160),
			Category:     constants.SnackCategorySweets,
			QuantityUnit: constants.QuantityUnitPieces,
			Stock:        60,
			IsEnabled:    true,
			SortOrder:    80,
		},
		{
			Name:         models.LocalizedText{TA: "ரிப்பன் பக்கோடா", EN: "Ribbon Pakoda"},
			Description:  models.LocalizedText{TA: "கடலை மாவில் செய்த மொறுமொறு தின்பண்டம்", EN: "Crunchy ribbon-shaped gram flour snack"},
			Price:        money(110),
			Category:     constants.SnackCategorySnacks,
			QuantityUnit: constants.QuantityUnitGrams,
			Stock:        0,
			IsEnabled:    true,
			SortOrder:    75,
		},
	}

	for _, snack := range snacks {
		var existing models.SnackItem
		if err := models.DB.Where("name_en = ?", snack.Name.EN).First(&existing).Error; err != nil {
			if err := models.DB.Create(&snack).Error; err != nil {
				stdLog.Printf("failed to create snack %s: %v", snack.Name.EN, err)
			} else {
				stdLog.Printf("created snack: %s", snack.Name.EN)
			}
		} else {
			stdLog.Printf("snack already exists: %s", snack.Name.EN)
		}
	}

	expiry := time.Now().AddDate(0, 3, 0)
	coupons := []models.Coupon{
		{
			Code:          "WELCOME10",
			Name:          models.LocalizedText{TA: "வரவேற்பு தள்ளுபடி", EN: "Welcome Discount"},
			Description:   models.LocalizedText{TA: "முதல் ஆர்டருக்கு 10% தள்ளுபடி", EN: "10% off your first order"},
			Type:          constants.CouponTypePercentage,
			Value:         money(10),
			MaxDiscount:   money(100),
			MinOrderValue: money(200),
			IsActive:      true,
			ExpiresAt:     &expiry,
		},
		{
			Code:          "FESTIVE50",
			Name:          models.LocalizedText{TA: "பண்டிகை சலுகை", EN: "Festive Offer"},
			Description:   models.LocalizedText{TA: "ரூ.50 தள்ளுபடி", EN: "Flat Rs.50 off"},
			Type:          constants.CouponTypeFixed,
			Value:         money(50),
			MinOrderValue: money(500),
			MaxUsage:      200,
			IsActive:      true,
		},
	}

	for _, coupon := range coupons {
		var existing models.Coupon
		if err := models.DB.Where("code = ?", coupon.Code).First(&existing).Error; err != nil {
			if err := models.DB.Create(&coupon).Error; err != nil {
				stdLog.Printf("failed to create coupon %s: %v", coupon.Code, err)
			} else {
				stdLog.Printf("created coupon: %s", coupon.Code)
			}
		} else {
			stdLog.Printf("coupon already exists: %s", coupon.Code)
		}
	}

	media := []models.MediaEntry{
		{
			Kind:      constants.MediaKindMenu,
			URL:       "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=1200",
			Caption:   models.LocalizedText{TA: "இன்றைய மெனு", EN: "Today's menu"},
			SortOrder: 100,
			IsActive:  true,
		},
		{
			Kind:      constants.MediaKindReel,
			URL:       "https://example.com/reels/murukku-making.mp4",
			Caption:   models.LocalizedText{TA: "முறுக்கு செய்யும் முறை", EN: "Making murukku by hand"},
			SortOrder: 100,
			IsActive:  true,
		},
	}

	for _, entry := range media {
		var existing models.MediaEntry
		if err := models.DB.Where("kind = ? AND url = ?", entry.Kind, entry.URL).First(&existing).Error; err != nil {
			if err := models.DB.Create(&entry).Error; err != nil {
				stdLog.Printf("failed to create media %s: %v", entry.URL, err)
			} else {
				stdLog.Printf("created media: %s", entry.URL)
			}
		} else {
			stdLog.Printf("media already exists: %s", entry.URL)
		}
	}

	shipping := map[string]interface{}{
		"charge":                  "50",
		"free_shipping_threshold": "500",
		"banner": map[string]string{
			"ta": "ரூ.500க்கு மேல் இலவச டெலிவரி!",
			"en": "Free delivery on orders above Rs.500!",
		},
		"banner_visible": true,
	}
	var setting models.Setting
	if err := models.DB.Where("key = ?", constants.SettingKeyShippingConfig).First(&setting).Error; err != nil {
		setting = models.Setting{
			Key:       constants.SettingKeyShippingConfig,
			ValueJSON: models.JSON(shipping),
		}
		if err := models.DB.Create(&setting).Error; err != nil {
			stdLog.Printf("failed to create shipping config: %v", err)
		} else {
			stdLog.Println("created shipping config")
		}
	} else {
		stdLog.Println("shipping config already exists")
	}

	fmt.Println("\nSeed data created:")
	fmt.Println("- 6 snacks (podi, pickle, snacks, sweets)")
	fmt.Println("- 2 coupons (WELCOME10, FESTIVE50)")
	fmt.Println("- 2 media entries (menu image, reel)")
	fmt.Println("- shipping config")
}
