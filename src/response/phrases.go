package response

// Phrase keys referenced by the intent mapping.
const (
	keyGreeting         = "greeting"
	keyRoomTypes        = "room_types"
	keyAmenities        = "amenities"
	keyCheckIn          = "check_in"
	keyBookingHelp      = "booking_help"
	keyCancellation     = "cancellation"
	keyBreakfast        = "breakfast"
	keyPets             = "pets"
	keyParking          = "parking"
	keyWifi             = "wifi"
	keyRoomAvailability = "room_availability"
	keyPriceStandard    = "price_standard"
	keyPriceDeluxe      = "price_deluxe"
	keyPriceSuite       = "price_suite"
	keyModifyBooking    = "modify_booking"
	keyCancelBooking    = "cancel_booking"
	keyRoomFeatures     = "room_features"
	keyEarlyCheckin     = "early_checkin"
	keyLateCheckout     = "late_checkout"
	keyGroupBooking     = "group_booking"
	keyLongStay         = "long_stay"
	keyPaymentOptions   = "payment_options"
	keyExtraBed         = "extra_bed"
	keyChildPolicy      = "child_policy"
	keyAttractions      = "nearest_attractions"
	keyAirportTransfer  = "airport_transfer"
	keySpecialOccasion  = "special_occasion"
	keyConferenceRooms  = "conference_rooms"
	keyLoyaltyProgram   = "loyalty_program"
	keyComplaint        = "complaint"
)

// phraseTables holds the localized phrase table per language code. The
// default language's table must be complete; other languages may be sparse
// and fall back through the generator's lookup chain.
var phraseTables = map[string]map[string]string{
	"en": {
		keyGreeting:         "Welcome to our hotel! How may I assist you today?",
		keyRoomTypes:        "We offer Standard (₹2000), Deluxe (₹3500), and Suite (₹6000) rooms.",
		keyAmenities:        "Our amenities include: Free WiFi, Swimming Pool, Fitness Center, Restaurant, Spa, and more!",
		keyCheckIn:          "Check-in time is 2:00 PM and check-out time is 11:00 AM.",
		keyBookingHelp:      "I can help you book a room. Please provide: check-in date, check-out date, room type, and number of guests.",
		keyCancellation:     "Free cancellation up to 24 hours before check-in.",
		keyBreakfast:        "Breakfast is served from 7:00 AM to 10:30 AM.",
		keyPets:             "Yes, pets are allowed with an additional charge of ₹500 per night.",
		keyParking:          "Yes, we provide free parking for our guests.",
		keyWifi:             "Yes, free high-speed WiFi is available throughout the hotel.",
		keyRoomAvailability: "Let me check availability for you. Which dates are you looking at? And which room type would you prefer - Standard, Deluxe, or Suite?",
		keyPriceStandard:    "Our Standard room is ₹2000 per night. It includes WiFi, TV, AC, and Mini Bar.",
		keyPriceDeluxe:      "Our Deluxe room is ₹3500 per night. It includes all Standard amenities plus a Balcony and Smart TV.",
		keyPriceSuite:       "Our Suite is ₹6000 per night. It includes all Deluxe amenities plus a Kitchenette and Living Room.",
		keyModifyBooking:    "I can help modify your booking. Please provide your booking reference number and what changes you'd like to make.",
		keyCancelBooking:    "I can help cancel your booking. Please provide your booking reference number. Note: Free cancellation is available up to 24 hours before check-in.",
		keyRoomFeatures:     "All our rooms include: Air Conditioning, Free WiFi, Flat-screen TV, Mini Bar, and Daily Housekeeping. Would you like details about a specific room type?",
		keyEarlyCheckin:     "Early check-in is subject to availability. Please let us know your arrival time and we'll do our best to accommodate you. There may be an additional charge.",
		keyLateCheckout:     "Late check-out is available upon request, subject to availability. There may be an additional charge depending on how late you need.",
		keyGroupBooking:     "For group bookings of 5+ rooms, we offer special rates! Please provide: number of rooms needed, check-in/out dates, and guest count.",
		keyLongStay:         "We offer special discounts for stays of 7+ nights! Please share your dates and I'll provide you with our long-stay rates.",
		keyPaymentOptions:   "We accept: Cash, Credit Card, Debit Card, UPI, and Net Banking. Payment can be made at check-in or we can send a payment link for advance booking.",
		keyExtraBed:         "Extra beds are available at ₹800 per night. Maximum 1 extra bed can be added to Deluxe rooms and Suites.",
		keyChildPolicy:      "Children under 5 stay free. Children aged 5-12 are charged 50% of the room rate when using existing bedding.",
		keyAttractions:      "We're located near popular attractions: City Mall (2 km), Beach (5 km), Airport (15 km), Railway Station (3 km).",
		keyAirportTransfer:  "Yes, we provide airport shuttle service at ₹500 per trip. Please inform us of your flight details in advance.",
		keySpecialOccasion:  "We'd love to make your special occasion memorable! We offer: Birthday decorations (₹1500), Anniversary packages (₹2500), and Honeymoon packages (₹3500).",
		keyConferenceRooms:  "We have conference rooms available for business meetings. Rates start at ₹2000 for 4 hours. Includes projector, WiFi, and refreshments.",
		keyLoyaltyProgram:   "Join our loyalty program! Earn points on every stay and get exclusive discounts, free upgrades, and special offers.",
		keyComplaint:        "I sincerely apologize for any inconvenience. Please share the details and I'll ensure our team addresses your concern immediately. You can also speak to our manager.",
	},
	"lv": {
		keyGreeting:         "Laipni lūdzam mūsu viesnīcā! Kā es varu jums palīdzēt?",
		keyRoomTypes:        "Mēs piedāvājam Standarta (₹2000), Deluxe (₹3500) un Suite (₹6000) istabas.",
		keyAmenities:        "Mūsu ērtības ietver: bezmaksas WiFi, baseinu, fitnesa centru, restorānu, spa un vēl!",
		keyCheckIn:          "Reģistrēšanās laiks ir 14:00, un izrakstīšanās laiks ir 11:00.",
		keyBookingHelp:      "Es varu palīdzēt jums rezervēt istabu. Lūdzu, norādiet: ierašanās datumu, izbraukšanas datumu, istabas tipu un viesu skaitu.",
		keyCancellation:     "Bezmaksas atcelšana līdz 24 stundām pirms iebraukšanas.",
		keyRoomAvailability: "Ļaujiet man pārbaudīt pieejamību. Kādus datumus jūs meklējat? Un kādu istabas tipu vēlaties?",
		keyPriceStandard:    "Mūsu Standarta istaba ir ₹2000 par nakti.",
		keyPriceDeluxe:      "Mūsu Deluxe istaba ir ₹3500 par nakti.",
		keyPriceSuite:       "Mūsu Suite ir ₹6000 par nakti.",
		keyPaymentOptions:   "Mēs pieņemam: skaidru naudu, kredītkarti, debetkarti, UPI un interneta banku.",
	},
	"ru": {
		keyGreeting:         "Добро пожаловать в наш отель! Чем я могу вам помочь?",
		keyRoomTypes:        "Мы предлагаем номера Стандарт (₹2000), Делюкс (₹3500) и Люкс (₹6000).",
		keyAmenities:        "Наши удобства включают: бесплатный WiFi, бассейн, фитнес-центр, ресторан, спа и многое другое!",
		keyCheckIn:          "Время заезда 14:00, время выезда 11:00.",
		keyBookingHelp:      "Я могу помочь вам забронировать номер. Пожалуйста, укажите: дату заезда, дату выезда, тип номера и количество гостей.",
		keyCancellation:     "Бесплатная отмена за 24 часа до заезда.",
		keyRoomAvailability: "Позвольте мне проверить наличие. На какие даты вы смотрите? И какой тип номера вы предпочитаете?",
		keyPriceStandard:    "Наш номер Стандарт стоит ₹2000 за ночь.",
		keyPriceDeluxe:      "Наш номер Делюкс стоит ₹3500 за ночь.",
		keyPriceSuite:       "Наш номер Люкс стоит ₹6000 за ночь.",
		keyPaymentOptions:   "Мы принимаем: наличные, кредитные карты, дебетовые карты, UPI и интернет-банкинг.",
	},
	"hi": {
		keyGreeting:         "हमारे होटल में आपका स्वागत है! मैं आपकी कैसे सहायता कर सकता हूं?",
		keyRoomTypes:        "हम स्टैंडर्ड (₹2000), डीलक्स (₹3500) और सूट (₹6000) कमरे प्रदान करते हैं।",
		keyAmenities:        "हमारी सुविधाओं में शामिल हैं: मुफ्त WiFi, स्विमिंग पूल, फिटनेस सेंटर, रेस्तरां, स्पा और बहुत कुछ!",
		keyCheckIn:          "चेक-इन का समय दोपहर 2:00 बजे और चेक-आउट का समय सुबह 11:00 बजे है।",
		keyBookingHelp:      "मैं आपको एक कमरा बुक करने में मदद कर सकता हूं। कृपया प्रदान करें: चेक-इन तिथि, चेक-आउट तिथि, कमरे का प्रकार और मेहमानों की संख्या।",
		keyCancellation:     "चेक-इन से 24 घंटे पहले तक मुफ्त रद्दीकरण।",
		keyRoomAvailability: "मैं आपके लिए उपलब्धता जांचता हूं। आप कौन सी तारीखें देख रहे हैं? और आप कौन सा कमरा पसंद करेंगे?",
		keyPriceStandard:    "हमारा स्टैंडर्ड कमरा ₹2000 प्रति रात है।",
		keyPriceDeluxe:      "हमारा डीलक्स कमरा ₹3500 प्रति रात है।",
		keyPriceSuite:       "हमारा सूट ₹6000 प्रति रात है।",
		keyPaymentOptions:   "हम स्वीकार करते हैं: नकद, क्रेडिट कार्ड, डेबिट कार्ड, UPI और नेट बैंकिंग।",
	},
	"si": {
		keyGreeting:     "අපගේ හෝටලයට ඔබව සාදරයෙන් පිළිගනිමු! මම ඔබට අද කෙසේ සහාය විය හැකිද?",
		keyRoomTypes:    "අපි සම්මත (₹2000), ඩිලක්ස් (₹3500), සහ සූට් (₹6000) කාමර ලබා දෙමු.",
		keyAmenities:    "අපගේ පහසුකම් ඇතුළත් වන්නේ: නොමිලේ WiFi, පිහිනුම් තටාකය, යෝග්‍යතා මධ්‍යස්ථානය, අවන්හල, ස්පා සහ තවත් බොහෝ දේ!",
		keyCheckIn:      "පිවිසීමේ කාලය පස්වරු 2:00 සහ පිටවීමේ කාලය පෙ.ව. 11:00 වේ.",
		keyBookingHelp:  "මට ඔබට කාමරයක් වෙන්කරවා ගැනීමට උදව් කළ හැකිය. කරුණාකර සපයන්න: පිවිසුම් දිනය, පිටවීමේ දිනය, කාමර වර්ගය සහ අමුත්තන් සංඛ්‍යාව.",
		keyCancellation: "පිවිසීමට පැය 24කට පෙර නොමිලේ අවලංගු කිරීම.",
		keyBreakfast:    "උදෑසන ආහාරය පෙ.ව. 7:00 සිට 10:30 දක්වා සේවය කරනු ලැබේ.",
		keyPets:         "ඔව්, සුරතල් සතුන්ට රාත්‍රියකට ₹500 අතිරේක ගාස්තුවක් සමඟ අවසර ඇත.",
		keyParking:      "ඔව්, අපි අපගේ අමුත්තන් සඳහා නොමිලේ වාහන නැවැත්වීමේ පහසුකම් සපයන්නෙමු.",
		keyWifi:         "ඔව්, නොමිලේ අධිවේගී WiFi මුළු හෝටලය පුරා තිබේ.",
	},
	"fr": {
		keyGreeting:     "Bienvenue dans notre hôtel! Comment puis-je vous aider aujourd'hui?",
		keyRoomTypes:    "Nous proposons des chambres Standard (₹2000), Deluxe (₹3500) et Suite (₹6000).",
		keyAmenities:    "Nos équipements comprennent: WiFi gratuit, piscine, centre de fitness, restaurant, spa et plus encore!",
		keyCheckIn:      "L'enregistrement est à 14h00 et le départ à 11h00.",
		keyBookingHelp:  "Je peux vous aider à réserver une chambre. Veuillez fournir: date d'arrivée, date de départ, type de chambre et nombre d'invités.",
		keyCancellation: "Annulation gratuite jusqu'à 24 heures avant l'arrivée.",
		keyBreakfast:    "Le petit-déjeuner est servi de 7h00 à 10h30.",
		keyPets:         "Oui, les animaux sont acceptés moyennant un supplément de ₹500 par nuit.",
		keyParking:      "Oui, nous offrons un parking gratuit à nos clients.",
		keyWifi:         "Oui, le WiFi haut débit gratuit est disponible dans tout l'hôtel.",
	},
	"it": {
		keyGreeting:     "Benvenuti nel nostro hotel! Come posso aiutarla oggi?",
		keyRoomTypes:    "Offriamo camere Standard (₹2000), Deluxe (₹3500) e Suite (₹6000).",
		keyAmenities:    "I nostri servizi includono: WiFi gratuito, piscina, centro fitness, ristorante, spa e altro ancora!",
		keyCheckIn:      "Il check-in è alle 14:00 e il check-out alle 11:00.",
		keyBookingHelp:  "Posso aiutarla a prenotare una camera. Fornisca: data di check-in, data di check-out, tipo di camera e numero di ospiti.",
		keyCancellation: "Cancellazione gratuita fino a 24 ore prima del check-in.",
		keyBreakfast:    "La colazione viene servita dalle 7:00 alle 10:30.",
		keyPets:         "Sì, gli animali domestici sono ammessi con un supplemento di ₹500 a notte.",
		keyParking:      "Sì, forniamo parcheggio gratuito per i nostri ospiti.",
		keyWifi:         "Sì, WiFi ad alta velocità gratuito è disponibile in tutto l'hotel.",
	},
	"de": {
		keyGreeting:     "Willkommen in unserem Hotel! Wie kann ich Ihnen heute helfen?",
		keyRoomTypes:    "Wir bieten Standard (₹2000), Deluxe (₹3500) und Suite (₹6000) Zimmer an.",
		keyAmenities:    "Unsere Annehmlichkeiten umfassen: Kostenloses WLAN, Schwimmbad, Fitnesscenter, Restaurant, Spa und mehr!",
		keyCheckIn:      "Check-in ist um 14:00 Uhr und Check-out um 11:00 Uhr.",
		keyBookingHelp:  "Ich kann Ihnen helfen, ein Zimmer zu buchen. Bitte geben Sie an: Check-in-Datum, Check-out-Datum, Zimmertyp und Anzahl der Gäste.",
		keyCancellation: "Kostenlose Stornierung bis 24 Stunden vor dem Check-in.",
		keyBreakfast:    "Das Frühstück wird von 7:00 bis 10:30 Uhr serviert.",
		keyPets:         "Ja, Haustiere sind gegen einen Aufpreis von ₹500 pro Nacht erlaubt.",
		keyParking:      "Ja, wir bieten unseren Gästen kostenlose Parkplätze.",
		keyWifi:         "Ja, kostenloses Highspeed-WLAN ist im gesamten Hotel verfügbar.",
	},
	"es": {
		keyGreeting:     "¡Bienvenido a nuestro hotel! ¿Cómo puedo ayudarle hoy?",
		keyRoomTypes:    "Ofrecemos habitaciones Estándar (₹2000), Deluxe (₹3500) y Suite (₹6000).",
		keyAmenities:    "Nuestras comodidades incluyen: WiFi gratis, piscina, gimnasio, restaurante, spa ¡y más!",
		keyCheckIn:      "El check-in es a las 14:00 y el check-out a las 11:00.",
		keyBookingHelp:  "Puedo ayudarle a reservar una habitación. Por favor proporcione: fecha de entrada, fecha de salida, tipo de habitación y número de huéspedes.",
		keyCancellation: "Cancelación gratuita hasta 24 horas antes del check-in.",
		keyBreakfast:    "El desayuno se sirve de 7:00 a 10:30.",
		keyPets:         "Sí, se permiten mascotas con un cargo adicional de ₹500 por noche.",
		keyParking:      "Sí, ofrecemos estacionamiento gratuito para nuestros huéspedes.",
		keyWifi:         "Sí, WiFi de alta velocidad gratuito está disponible en todo el hotel.",
	},
}
