package i18n

var tables = map[string]map[string]string{
	"en": {
		"currentPrice":      "Current Price",
		"pricesTitle":       "Cryptocurrency Prices",
		"refresh":           "Refresh",
		"lastUpdated":       "Last updated",
		"loadingCrypto":     "Loading cryptocurrency data...",
		"errorFetch":        "Failed to fetch cryptocurrency data",
		"showingCached":     "Showing cached data",
		"tasksTitle":        "Welcome to the Task Center!",
		"tasksSubtitle":     "Earn extra time by completing simple social media tasks or the daily TikTok Live mission.",
		"yourBalance":       "Your Balance",
		"minutes":           "minutes",
		"completeTask":      "Complete Task",
		"claimReward":       "Claim Reward",
		"completed":         "Completed",
		"processing":        "Verifying...",
		"referralsTitle":    "Referral Program",
		"yourReferralCode":  "Your Referral Code",
		"referralLink":      "Referral Link",
		"copyLink":          "Copy Link",
		"enterReferrerCode": "Enter Referrer Code",
		"submitCode":        "Submit Code",
		"linkCopied":        "Link copied to clipboard!",
		"codeSubmitted":     "Referrer code submitted successfully!",
		"profileTitle":      "Profile",
		"telegramPhoto":     "Telegram Photo",
		"username":          "Username",
		"level":             "Level",
		"fullName":          "Full Name",
		"editName":          "Edit Name",
		"saveName":          "Save Name",
		"nameSaved":         "Name saved successfully!",
		"levelBeginner":     "Beginner",
		"levelIntermediate": "Intermediate",
		"levelAdvanced":     "Advanced",
		"facebook":          "Facebook",
		"xtwitter":          "X/Twitter",
		"tiktok":            "TikTok",
		"instagram":         "Instagram",
		"youtube":           "YouTube",
		"telegram":          "Telegram",
	},
	"ar": {
		"currentPrice":      "السعر الحالي",
		"pricesTitle":       "أسعار العملات المشفرة",
		"refresh":           "تحديث",
		"lastUpdated":       "آخر تحديث",
		"loadingCrypto":     "جارٍ تحميل بيانات العملات المشفرة...",
		"errorFetch":        "فشل في جلب بيانات العملات المشفرة",
		"showingCached":     "عرض البيانات المحفوظة",
		"tasksTitle":        "مرحباً بك في مركز المهام!",
		"tasksSubtitle":     "اكسب وقتاً إضافياً من خلال إكمال مهام وسائل التواصل الاجتماعي البسيطة أو مهمة TikTok Live اليومية.",
		"yourBalance":       "رصيدك",
		"minutes":           "دقيقة",
		"completeTask":      "إكمال المهمة",
		"claimReward":       "استلام المكافأة",
		"completed":         "مكتملة",
		"processing":        "جارٍ التحقق...",
		"referralsTitle":    "برنامج الإحالة",
		"yourReferralCode":  "كود الإحالة الخاص بك",
		"referralLink":      "رابط الإحالة",
		"copyLink":          "نسخ الرابط",
		"enterReferrerCode": "أدخل كود المُحيل",
		"submitCode":        "إرسال الكود",
		"linkCopied":        "تم نسخ الرابط إلى الحافظة!",
		"codeSubmitted":     "تم إرسال كود المُحيل بنجاح!",
		"profileTitle":      "الملف الشخصي",
		"telegramPhoto":     "صورة تليغرام",
		"username":          "اسم المستخدم",
		"level":             "المستوى",
		"fullName":          "الاسم الكامل",
		"editName":          "تعديل الاسم",
		"saveName":          "حفظ الاسم",
		"nameSaved":         "تم حفظ الاسم بنجاح!",
		"levelBeginner":     "مبتدئ",
		"levelIntermediate": "متوسط",
		"levelAdvanced":     "متقدم",
		"facebook":          "فيسبوك",
		"xtwitter":          "إكس (تويتر)",
		"tiktok":            "تيك توك",
		"instagram":         "إنستغرام",
		"youtube":           "يوتيوب",
		"telegram":          "تليغرام",
	},
}
