package structs

// Bundled dataset the stores fall back to when a persisted key is absent.
// A factory reset removes every key, so the next read of each store returns
// exactly these values.

const DefaultHeroImage = "https://images.unsplash.com/photo-1490750967868-58cb75065ed6?q=80&w=2070&auto=format&fit=crop"

const (
	CategoryRibbons     = "أشرطة الساتان"
	CategoryWrapping    = "تغليف وتزيين"
	CategoryTools       = "أدوات ومعدات"
	CategoryAccessories = "اكسسوارات"
	CategoryBouquets    = "باقات جاهزة"
)

func DefaultCategories() []string {
	return []string{
		CategoryRibbons,
		CategoryWrapping,
		CategoryTools,
		CategoryAccessories,
		CategoryBouquets,
	}
}

func DefaultProducts() []Product {
	return []Product{
		{
			Id:       1,
			Name:     "شريط ستان",
			Price:    1500,
			Category: CategoryRibbons,
			Images: []string{
				"https://picsum.photos/id/1080/400/400",
				"https://picsum.photos/id/1081/400/400",
				"https://picsum.photos/id/1082/400/400",
			},
			Description: "شريط ستان عالي الجودة، مثالي لصناعة الورد الجوري الكلاسيكي. الطول 25 ياردة.",
			Stock:       50,
		},
		{
			Id:       2,
			Name:     "شريط ستان ألوان فاتحة",
			Price:    1500,
			Category: CategoryRibbons,
			Images: []string{
				"https://picsum.photos/id/360/400/400",
				"https://picsum.photos/id/361/400/400",
			},
			Description: "ألوان ناعمة للمناسبات السعيدة وهدايا المواليد. ملمس ناعم ولامع.",
			Stock:       35,
		},
		{
			Id:          3,
			Name:        "شريط ستان ألوان عصرية",
			Price:       1500,
			Category:    CategoryRibbons,
			Images:      []string{"https://picsum.photos/id/400/400/400"},
			Description: "ألوان مميزة وغير تقليدية لباقات الورد العصرية.",
			Stock:       20,
		},
		{
			Id:          4,
			Name:        "أعواد حديد خضراء (100 قطعة)",
			Price:       5000,
			Category:    CategoryTools,
			Images:      []string{"https://picsum.photos/id/106/400/400"},
			Description: "سيقان حديدية مغلفة باللون الأخضر، مرنة وقوية لتشكيل الباقة.",
			Stock:       15,
		},
		{
			Id:          5,
			Name:        "مسدس شمع حراري احترافي",
			Price:       12000,
			Category:    CategoryTools,
			Images:      []string{"https://picsum.photos/id/250/400/400"},
			Description: "مسدس شمع سريع التسخين مع زر أمان، ضروري لتثبيت البتلات.",
			Stock:       5,
		},
		{
			Id:          6,
			Name:        "ورق تغليف كوري شفاف",
			Price:       2500,
			Category:    CategoryWrapping,
			Images:      []string{"https://picsum.photos/id/160/400/400"},
			Description: "ورق تغليف عالي الجودة مقاوم للماء بحواف ذهبية.",
			Stock:       100,
		},
		{
			Id:          7,
			Name:        "فراشات للزينة (12 قطعة)",
			Price:       3000,
			Category:    CategoryAccessories,
			Images:      []string{"https://picsum.photos/id/152/400/400"},
			Description: "فراشات معدنية ثلاثية الأبعاد لإضافة لمسة سحرية للباقة.",
			Stock:       0,
		},
		{
			Id:          8,
			Name:        "لؤلؤ نصف دائري (علبة)",
			Price:       2000,
			Category:    CategoryAccessories,
			Images:      []string{"https://picsum.photos/id/60/400/400"},
			Description: "حبيبات لؤلؤ لتزيين قلب الزهرة أو ورق التغليف.",
			Stock:       25,
		},
		{
			Id:          9,
			Name:        "شريط ستان عريض (5 سم)",
			Price:       2000,
			Category:    CategoryRibbons,
			Images:      []string{"https://picsum.photos/id/660/400/400"},
			Description: "شريط عريض لعمل فيونكات كبيرة وتغليف الهدايا.",
			Stock:       40,
		},
	}
}

func DefaultSiteContent() SiteContent {
	return SiteContent{
		About: `أهلاً بك في Rosea، وجهتك الأولى لكل ما يتعلق بفن صناعة الورد الأبدي.

بدأت قصتنا من شغف بسيط بالأعمال اليدوية وتحويل شرائط الستان إلى تحف فنية تدوم للأبد. لاحظنا ندرة في توفر المواد الأولية عالية الجودة وتشتت الأدوات في أماكن مختلفة، فقررنا جمع كل ما تحتاجه صانعة الورد في مكان واحد.

نحن نؤمن بأن كل مبدعة تستحق أفضل الأدوات لتطلق العنان لخيالها. لذلك، ننتقي منتجاتنا بعناية فائقة، من أشرطة الستان ذات الملمس الحريري والألوان الثابتة، إلى أدوات القص واللصق الاحترافية.`,
		Terms: `1. المقدمة: أهلاً بكم في Rosea. باستعمالكم لهذا الموقع، فإنكم توافقون على الالتزام بهذه الشروط والأحكام.
2. المنتجات: نسعى لعرض ألوان المنتجات وصورها بدقة، ولكن قد تختلف قليلاً حسب إضاءة الشاشة.
3. الأسعار: جميع الأسعار بالدينار العراقي وقابلة للتغيير دون إشعار مسبق.
4. الطلب: يعتبر الطلب مؤكداً بعد التواصل معكم من قبل خدمة العملاء.`,
		Privacy: `نحن في Rosea نحترم خصوصيتك ونلتزم بحماية بياناتك الشخصية.
- نجمع المعلومات الأساسية (الاسم، العنوان، الهاتف) فقط لغرض توصيل الطلب.
- لا نقوم بمشاركة بياناتك مع أي طرف ثالث لأغراض تسويقية.
- نستخدم ملفات تعريف الارتباط (Cookies) لتحسين تجربة التصفح وحفظ السلة.`,
		Returns: `1. يسمح بالاستبدال أو الاسترجاع خلال 3 أيام من تاريخ استلام الطلب.
2. يجب أن يكون المنتج بحالته الأصلية ولم يتم قصه أو استخدامه (خاصة أشرطة الستان).
3. يتحمل العميل تكاليف التوصيل في حالة الاستبدال لغير عيوب التصنيع.`,
		FAQ: []FAQEntry{
			{
				Question: "كم يستغرق التوصيل؟",
				Answer:   "التوصيل داخل بغداد خلال 24 ساعة، وللمحافظات خلال 2-3 أيام عمل.",
			},
			{
				Question: "كيف يمكنني حساب كمية الستان للوردة؟",
				Answer:   "يمكنك استخدام 'مساعد التنسيق الذكي' في الموقع، أو اتباع القاعدة العامة: الوردة الجورية الواحدة تستهلك حوالي 1.5 إلى 2 متر.",
			},
			{
				Question: "هل تتوفر خدمة الدفع الإلكتروني؟",
				Answer:   "حالياً الدفع يكون نقداً عند الاستلام (Cash on Delivery) لضمان راحتكم.",
			},
		},
	}
}

// Governorates lists the delivery regions offered at checkout.
func Governorates() []string {
	return []string{
		"بغداد", "البصرة", "نينوى", "أربيل", "النجف", "كربلاء",
		"كركوك", "ديالى", "الأنبار", "بابل", "واسط", "صلاح الدين",
		"دهوك", "القادسية", "المثنى", "ميسان", "ذي قار", "السليمانية",
	}
}
