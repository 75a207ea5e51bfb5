package catalog

// seedSurahs is the full catalog, ordered by number.
var seedSurahs = []Surah{
	{Number: 1, Name: "الفاتحة", EnglishName: "Al-Fatiha", EnglishNameTranslation: "The Opening", RevelationType: RevelationMeccan, NumberOfAyahs: 7},
	{Number: 2, Name: "البقرة", EnglishName: "Al-Baqarah", EnglishNameTranslation: "The Cow", RevelationType: RevelationMedinan, NumberOfAyahs: 286},
	{Number: 3, Name: "آل عمران", EnglishName: "Aal-E-Imran", EnglishNameTranslation: "The Family of Imran", RevelationType: RevelationMedinan, NumberOfAyahs: 200},
	{Number: 4, Name: "النساء", EnglishName: "An-Nisa", EnglishNameTranslation: "The Women", RevelationType: RevelationMedinan, NumberOfAyahs: 176},
	{Number: 5, Name: "المائدة", EnglishName: "Al-Ma'idah", EnglishNameTranslation: "The Table Spread", RevelationType: RevelationMedinan, NumberOfAyahs: 120},
	{Number: 6, Name: "الأنعام", EnglishName: "Al-An'am", EnglishNameTranslation: "The Cattle", RevelationType: RevelationMeccan, NumberOfAyahs: 165},
	{Number: 7, Name: "الأعراف", EnglishName: "Al-A'raf", EnglishNameTranslation: "The Heights", RevelationType: RevelationMeccan, NumberOfAyahs: 206},
	{Number: 8, Name: "الأنفال", EnglishName: "Al-Anfal", EnglishNameTranslation: "The Spoils of War", RevelationType: RevelationMedinan, NumberOfAyahs: 75},
	{Number: 9, Name: "التوبة", EnglishName: "At-Tawbah", EnglishNameTranslation: "The Repentance", RevelationType: RevelationMedinan, NumberOfAyahs: 129},
	{Number: 10, Name: "يونس", EnglishName: "Yunus", EnglishNameTranslation: "Jonah", RevelationType: RevelationMeccan, NumberOfAyahs: 109},
	{Number: 11, Name: "هود", EnglishName: "Hud", EnglishNameTranslation: "Hud", RevelationType: RevelationMeccan, NumberOfAyahs: 123},
	{Number: 12, Name: "يوسف", EnglishName: "Yusuf", EnglishNameTranslation: "Joseph", RevelationType: RevelationMeccan, NumberOfAyahs: 111},
	{Number: 13, Name: "الرعد", EnglishName: "Ar-Ra'd", EnglishNameTranslation: "The Thunder", RevelationType: RevelationMedinan, NumberOfAyahs: 43},
	{Number: 14, Name: "إبراهيم", EnglishName: "Ibrahim", EnglishNameTranslation: "Abraham", RevelationType: RevelationMeccan, NumberOfAyahs: 52},
	{Number: 15, Name: "الحجر", EnglishName: "Al-Hijr", EnglishNameTranslation: "The Rocky Tract", RevelationType: RevelationMeccan, NumberOfAyahs: 99},
	{Number: 16, Name: "النحل", EnglishName: "An-Nahl", EnglishNameTranslation: "The Bee", RevelationType: RevelationMeccan, NumberOfAyahs: 128},
	{Number: 17, Name: "الإسراء", EnglishName: "Al-Isra", EnglishNameTranslation: "The Night Journey", RevelationType: RevelationMeccan, NumberOfAyahs: 111},
	{Number: 18, Name: "الكهف", EnglishName: "Al-Kahf", EnglishNameTranslation: "The Cave", RevelationType: RevelationMeccan, NumberOfAyahs: 110},
	{Number: 19, Name: "مريم", EnglishName: "Maryam", EnglishNameTranslation: "Mary", RevelationType: RevelationMeccan, NumberOfAyahs: 98},
	{Number: 20, Name: "طه", EnglishName: "Ta-Ha", EnglishNameTranslation: "Ta-Ha", RevelationType: RevelationMeccan, NumberOfAyahs: 135},
	{Number: 21, Name: "الأنبياء", EnglishName: "Al-Anbiya", EnglishNameTranslation: "The Prophets", RevelationType: RevelationMeccan, NumberOfAyahs: 112},
	{Number: 22, Name: "الحج", EnglishName: "Al-Hajj", EnglishNameTranslation: "The Pilgrimage", RevelationType: RevelationMedinan, NumberOfAyahs: 78},
	{Number: 23, Name: "المؤمنون", EnglishName: "Al-Mu'minun", EnglishNameTranslation: "The Believers", RevelationType: RevelationMeccan, NumberOfAyahs: 118},
	{Number: 24, Name: "النور", EnglishName: "An-Nur", EnglishNameTranslation: "The Light", RevelationType: RevelationMedinan, NumberOfAyahs: 64},
	{Number: 25, Name: "الفرقان", EnglishName: "Al-Furqan", EnglishNameTranslation: "The Criterion", RevelationType: RevelationMeccan, NumberOfAyahs: 77},
	{Number: 26, Name: "الشعراء", EnglishName: "Ash-Shu'ara", EnglishNameTranslation: "The Poets", RevelationType: RevelationMeccan, NumberOfAyahs: 227},
	{Number: 27, Name: "النمل", EnglishName: "An-Naml", EnglishNameTranslation: "The Ant", RevelationType: RevelationMeccan, NumberOfAyahs: 93},
	{Number: 28, Name: "القصص", EnglishName: "Al-Qasas", EnglishNameTranslation: "The Stories", RevelationType: RevelationMeccan, NumberOfAyahs: 88},
	{Number: 29, Name: "العنكبوت", EnglishName: "Al-Ankabut", EnglishNameTranslation: "The Spider", RevelationType: RevelationMeccan, NumberOfAyahs: 69},
	{Number: 30, Name: "الروم", EnglishName: "Ar-Rum", EnglishNameTranslation: "The Romans", RevelationType: RevelationMeccan, NumberOfAyahs: 60},
	{Number: 31, Name: "لقمان", EnglishName: "Luqman", EnglishNameTranslation: "Luqman", RevelationType: RevelationMeccan, NumberOfAyahs: 34},
	{Number: 32, Name: "السجدة", EnglishName: "As-Sajda", EnglishNameTranslation: "The Prostration", RevelationType: RevelationMeccan, NumberOfAyahs: 30},
	{Number: 33, Name: "الأحزاب", EnglishName: "Al-Ahzab", EnglishNameTranslation: "The Combined Forces", RevelationType: RevelationMedinan, NumberOfAyahs: 73},
	{Number: 34, Name: "سبأ", EnglishName: "Saba", EnglishNameTranslation: "Sheba", RevelationType: RevelationMeccan, NumberOfAyahs: 54},
	{Number: 35, Name: "فاطر", EnglishName: "Fatir", EnglishNameTranslation: "Originator", RevelationType: RevelationMeccan, NumberOfAyahs: 45},
	{Number: 36, Name: "يس", EnglishName: "Ya-Sin", EnglishNameTranslation: "Ya-Sin", RevelationType: RevelationMeccan, NumberOfAyahs: 83},
	{Number: 37, Name: "الصافات", EnglishName: "As-Saffat", EnglishNameTranslation: "Those who set the Ranks", RevelationType: RevelationMeccan, NumberOfAyahs: 182},
	{Number: 38, Name: "ص", EnglishName: "Sad", EnglishNameTranslation: "The Letter Sad", RevelationType: RevelationMeccan, NumberOfAyahs: 88},
	{Number: 39, Name: "الزمر", EnglishName: "Az-Zumar", EnglishNameTranslation: "The Troops", RevelationType: RevelationMeccan, NumberOfAyahs: 75},
	{Number: 40, Name: "غافر", EnglishName: "Ghafir", EnglishNameTranslation: "The Forgiver", RevelationType: RevelationMeccan, NumberOfAyahs: 85},
	{Number: 41, Name: "فصلت", EnglishName: "Fussilat", EnglishNameTranslation: "Explained in Detail", RevelationType: RevelationMeccan, NumberOfAyahs: 54},
	{Number: 42, Name: "الشورى", EnglishName: "Ash-Shura", EnglishNameTranslation: "The Consultation", RevelationType: RevelationMeccan, NumberOfAyahs: 53},
	{Number: 43, Name: "الزخرف", EnglishName: "Az-Zukhruf", EnglishNameTranslation: "The Ornaments of Gold", RevelationType: RevelationMeccan, NumberOfAyahs: 89},
	{Number: 44, Name: "الدخان", EnglishName: "Ad-Dukhan", EnglishNameTranslation: "The Smoke", RevelationType: RevelationMeccan, NumberOfAyahs: 59},
	{Number: 45, Name: "الجاثية", EnglishName: "Al-Jathiya", EnglishNameTranslation: "The Crouching", RevelationType: RevelationMeccan, NumberOfAyahs: 37},
	{Number: 46, Name: "الأحقاف", EnglishName: "Al-Ahqaf", EnglishNameTranslation: "The Wind-Curved Sandhills", RevelationType: RevelationMeccan, NumberOfAyahs: 35},
	{Number: 47, Name: "محمد", EnglishName: "Muhammad", EnglishNameTranslation: "Muhammad", RevelationType: RevelationMedinan, NumberOfAyahs: 38},
	{Number: 48, Name: "الفتح", EnglishName: "Al-Fath", EnglishNameTranslation: "The Victory", RevelationType: RevelationMedinan, NumberOfAyahs: 29},
	{Number: 49, Name: "الحجرات", EnglishName: "Al-Hujurat", EnglishNameTranslation: "The Rooms", RevelationType: RevelationMedinan, NumberOfAyahs: 18},
	{Number: 50, Name: "ق", EnglishName: "Qaf", EnglishNameTranslation: "The Letter Qaf", RevelationType: RevelationMeccan, NumberOfAyahs: 45},
	{Number: 51, Name: "الذاريات", EnglishName: "Adh-Dhariyat", EnglishNameTranslation: "The Winnowing Winds", RevelationType: RevelationMeccan, NumberOfAyahs: 60},
	{Number: 52, Name: "الطور", EnglishName: "At-Tur", EnglishNameTranslation: "The Mount", RevelationType: RevelationMeccan, NumberOfAyahs: 49},
	{Number: 53, Name: "النجم", EnglishName: "An-Najm", EnglishNameTranslation: "The Star", RevelationType: RevelationMeccan, NumberOfAyahs: 62},
	{Number: 54, Name: "القمر", EnglishName: "Al-Qamar", EnglishNameTranslation: "The Moon", RevelationType: RevelationMeccan, NumberOfAyahs: 55},
	{Number: 55, Name: "الرحمن", EnglishName: "Ar-Rahman", EnglishNameTranslation: "The Beneficent", RevelationType: RevelationMedinan, NumberOfAyahs: 78},
	{Number: 56, Name: "الواقعة", EnglishName: "Al-Waqi'a", EnglishNameTranslation: "The Inevitable", RevelationType: RevelationMeccan, NumberOfAyahs: 96},
	{Number: 57, Name: "الحديد", EnglishName: "Al-Hadid", EnglishNameTranslation: "The Iron", RevelationType: RevelationMedinan, NumberOfAyahs: 29},
	{Number: 58, Name: "المجادلة", EnglishName: "Al-Mujadila", EnglishNameTranslation: "The Pleading Woman", RevelationType: RevelationMedinan, NumberOfAyahs: 22},
	{Number: 59, Name: "الحشر", EnglishName: "Al-Hashr", EnglishNameTranslation: "The Exile", RevelationType: RevelationMedinan, NumberOfAyahs: 24},
	{Number: 60, Name: "الممتحنة", EnglishName: "Al-Mumtahanah", EnglishNameTranslation: "She that is to be examined", RevelationType: RevelationMedinan, NumberOfAyahs: 13},
	{Number: 61, Name: "الصف", EnglishName: "As-Saff", EnglishNameTranslation: "The Ranks", RevelationType: RevelationMedinan, NumberOfAyahs: 14},
	{Number: 62, Name: "الجمعة", EnglishName: "Al-Jumu'ah", EnglishNameTranslation: "The Congregation", RevelationType: RevelationMedinan, NumberOfAyahs: 11},
	{Number: 63, Name: "المنافقون", EnglishName: "Al-Munafiqun", EnglishNameTranslation: "The Hypocrites", RevelationType: RevelationMedinan, NumberOfAyahs: 11},
	{Number: 64, Name: "التغابن", EnglishName: "At-Taghabun", EnglishNameTranslation: "The Mutual Disillusion", RevelationType: RevelationMedinan, NumberOfAyahs: 18},
	{Number: 65, Name: "الطلاق", EnglishName: "At-Talaq", EnglishNameTranslation: "The Divorce", RevelationType: RevelationMedinan, NumberOfAyahs: 12},
	{Number: 66, Name: "التحريم", EnglishName: "At-Tahrim", EnglishNameTranslation: "The Prohibition", RevelationType: RevelationMedinan, NumberOfAyahs: 12},
	{Number: 67, Name: "الملك", EnglishName: "Al-Mulk", EnglishNameTranslation: "The Sovereignty", RevelationType: RevelationMeccan, NumberOfAyahs: 30},
	{Number: 68, Name: "القلم", EnglishName: "Al-Qalam", EnglishNameTranslation: "The Pen", RevelationType: RevelationMeccan, NumberOfAyahs: 52},
	{Number: 69, Name: "الحاقة", EnglishName: "Al-Haqqah", EnglishNameTranslation: "The Reality", RevelationType: RevelationMeccan, NumberOfAyahs: 52},
	{Number: 70, Name: "المعارج", EnglishName: "Al-Ma'arij", EnglishNameTranslation: "The Ascending Stairways", RevelationType: RevelationMeccan, NumberOfAyahs: 44},
	{Number: 71, Name: "نوح", EnglishName: "Nuh", EnglishNameTranslation: "Noah", RevelationType: RevelationMeccan, NumberOfAyahs: 28},
	{Number: 72, Name: "الجن", EnglishName: "Al-Jinn", EnglishNameTranslation: "The Jinn", RevelationType: RevelationMeccan, NumberOfAyahs: 28},
	{Number: 73, Name: "المزمل", EnglishName: "Al-Muzzammil", EnglishNameTranslation: "The Enshrouded One", RevelationType: RevelationMeccan, NumberOfAyahs: 20},
	{Number: 74, Name: "المدثر", EnglishName: "Al-Muddaththir", EnglishNameTranslation: "The Cloaked One", RevelationType: RevelationMeccan, NumberOfAyahs: 56},
	{Number: 75, Name: "القيامة", EnglishName: "Al-Qiyamah", EnglishNameTranslation: "The Resurrection", RevelationType: RevelationMeccan, NumberOfAyahs: 40},
	{Number: 76, Name: "الإنسان", EnglishName: "Al-Insan", EnglishNameTranslation: "The Man", RevelationType: RevelationMedinan, NumberOfAyahs: 31},
	{Number: 77, Name: "المرسلات", EnglishName: "Al-Mursalat", EnglishNameTranslation: "The Emissaries", RevelationType: RevelationMeccan, NumberOfAyahs: 50},
	{Number: 78, Name: "النبأ", EnglishName: "An-Naba", EnglishNameTranslation: "The Tidings", RevelationType: RevelationMeccan, NumberOfAyahs: 40},
	{Number: 79, Name: "النازعات", EnglishName: "An-Nazi'at", EnglishNameTranslation: "Those who drag forth", RevelationType: RevelationMeccan, NumberOfAyahs: 46},
	{Number: 80, Name: "عبس", EnglishName: "'Abasa", EnglishNameTranslation: "He Frowned", RevelationType: RevelationMeccan, NumberOfAyahs: 42},
	{Number: 81, Name: "التكوير", EnglishName: "At-Takwir", EnglishNameTranslation: "The Overthrowing", RevelationType: RevelationMeccan, NumberOfAyahs: 29},
	{Number: 82, Name: "الانفطار", EnglishName: "Al-Infitar", EnglishNameTranslation: "The Cleaving", RevelationType: RevelationMeccan, NumberOfAyahs: 19},
	{Number: 83, Name: "المطففين", EnglishName: "Al-Mutaffifin", EnglishNameTranslation: "The Defrauding", RevelationType: RevelationMeccan, NumberOfAyahs: 36},
	{Number: 84, Name: "الانشقاق", EnglishName: "Al-Inshiqaq", EnglishNameTranslation: "The Sundering", RevelationType: RevelationMeccan, NumberOfAyahs: 25},
	{Number: 85, Name: "البروج", EnglishName: "Al-Buruj", EnglishNameTranslation: "The Mansions of the Stars", RevelationType: RevelationMeccan, NumberOfAyahs: 22},
	{Number: 86, Name: "الطارق", EnglishName: "At-Tariq", EnglishNameTranslation: "The Nightcomer", RevelationType: RevelationMeccan, NumberOfAyahs: 17},
	{Number: 87, Name: "الأعلى", EnglishName: "Al-A'la", EnglishNameTranslation: "The Most High", RevelationType: RevelationMeccan, NumberOfAyahs: 19},
	{Number: 88, Name: "الغاشية", EnglishName: "Al-Ghashiyah", EnglishNameTranslation: "The Overwhelming", RevelationType: RevelationMeccan, NumberOfAyahs: 26},
	{Number: 89, Name: "الفجر", EnglishName: "Al-Fajr", EnglishNameTranslation: "The Dawn", RevelationType: RevelationMeccan, NumberOfAyahs: 30},
	{Number: 90, Name: "البلد", EnglishName: "Al-Balad", EnglishNameTranslation: "The City", RevelationType: RevelationMeccan, NumberOfAyahs: 20},
	{Number: 91, Name: "الشمس", EnglishName: "Ash-Shams", EnglishNameTranslation: "The Sun", RevelationType: RevelationMeccan, NumberOfAyahs: 15},
	{Number: 92, Name: "الليل", EnglishName: "Al-Layl", EnglishNameTranslation: "The Night", RevelationType: RevelationMeccan, NumberOfAyahs: 21},
	{Number: 93, Name: "الضحى", EnglishName: "Ad-Duha", EnglishNameTranslation: "The Morning Hours", RevelationType: RevelationMeccan, NumberOfAyahs: 11},
	{Number: 94, Name: "الشرح", EnglishName: "Ash-Sharh", EnglishNameTranslation: "The Relief", RevelationType: RevelationMeccan, NumberOfAyahs: 8},
	{Number: 95, Name: "التين", EnglishName: "At-Tin", EnglishNameTranslation: "The Fig", RevelationType: RevelationMeccan, NumberOfAyahs: 8},
	{Number: 96, Name: "العلق", EnglishName: "Al-'Alaq", EnglishNameTranslation: "The Clot", RevelationType: RevelationMeccan, NumberOfAyahs: 19},
	{Number: 97, Name: "القدر", EnglishName: "Al-Qadr", EnglishNameTranslation: "The Power", RevelationType: RevelationMeccan, NumberOfAyahs: 5},
	{Number: 98, Name: "البينة", EnglishName: "Al-Bayyinah", EnglishNameTranslation: "The Clear Proof", RevelationType: RevelationMedinan, NumberOfAyahs: 8},
	{Number: 99, Name: "الزلزلة", EnglishName: "Az-Zalzalah", EnglishNameTranslation: "The Earthquake", RevelationType: RevelationMedinan, NumberOfAyahs: 8},
	{Number: 100, Name: "العاديات", EnglishName: "Al-'Adiyat", EnglishNameTranslation: "The Courser", RevelationType: RevelationMeccan, NumberOfAyahs: 11},
	{Number: 101, Name: "القارعة", EnglishName: "Al-Qari'ah", EnglishNameTranslation: "The Calamity", RevelationType: RevelationMeccan, NumberOfAyahs: 11},
	{Number: 102, Name: "التكاثر", EnglishName: "At-Takathur", EnglishNameTranslation: "The Rivalry in World Increase", RevelationType: RevelationMeccan, NumberOfAyahs: 8},
	{Number: 103, Name: "العصر", EnglishName: "Al-'Asr", EnglishNameTranslation: "The Declining Day", RevelationType: RevelationMeccan, NumberOfAyahs: 3},
	{Number: 104, Name: "الهمزة", EnglishName: "Al-Humazah", EnglishNameTranslation: "The Traducer", RevelationType: RevelationMeccan, NumberOfAyahs: 9},
	{Number: 105, Name: "الفيل", EnglishName: "Al-Fil", EnglishNameTranslation: "The Elephant", RevelationType: RevelationMeccan, NumberOfAyahs: 5},
	{Number: 106, Name: "قريش", EnglishName: "Quraysh", EnglishNameTranslation: "Quraysh", RevelationType: RevelationMeccan, NumberOfAyahs: 4},
	{Number: 107, Name: "الماعون", EnglishName: "Al-Ma'un", EnglishNameTranslation: "The Small Kindness", RevelationType: RevelationMeccan, NumberOfAyahs: 7},
	{Number: 108, Name: "الكوثر", EnglishName: "Al-Kawthar", EnglishNameTranslation: "The Abundance", RevelationType: RevelationMeccan, NumberOfAyahs: 3},
	{Number: 109, Name: "الكافرون", EnglishName: "Al-Kafirun", EnglishNameTranslation: "The Disbelievers", RevelationType: RevelationMeccan, NumberOfAyahs: 6},
	{Number: 110, Name: "النصر", EnglishName: "An-Nasr", EnglishNameTranslation: "The Divine Support", RevelationType: RevelationMedinan, NumberOfAyahs: 3},
	{Number: 111, Name: "المسد", EnglishName: "Al-Masad", EnglishNameTranslation: "The Palm Fiber", RevelationType: RevelationMeccan, NumberOfAyahs: 5},
	{Number: 112, Name: "الإخلاص", EnglishName: "Al-Ikhlas", EnglishNameTranslation: "The Sincerity", RevelationType: RevelationMeccan, NumberOfAyahs: 4},
	{Number: 113, Name: "الفلق", EnglishName: "Al-Falaq", EnglishNameTranslation: "The Daybreak", RevelationType: RevelationMeccan, NumberOfAyahs: 5},
	{Number: 114, Name: "الناس", EnglishName: "An-Nas", EnglishNameTranslation: "Mankind", RevelationType: RevelationMeccan, NumberOfAyahs: 6},
}

// seedOpeningAyahs holds the verses of Al-Fatiha.
var seedOpeningAyahs = []Ayah{
	{Number: 1, Text: "بِسْمِ اللَّهِ الرَّحْمَٰنِ الرَّحِيمِ", Translation: "In the name of Allah, the Entirely Merciful, the Especially Merciful.", Juz: 1, Page: 1},
	{Number: 2, Text: "الْحَمْدُ لِلَّهِ رَبِّ الْعَالَمِينَ", Translation: "[All] praise is [due] to Allah, Lord of the worlds.", Juz: 1, Page: 1},
	{Number: 3, Text: "الرَّحْمَٰنِ الرَّحِيمِ", Translation: "The Entirely Merciful, the Especially Merciful.", Juz: 1, Page: 1},
	{Number: 4, Text: "مَالِكِ يَوْمِ الدِّينِ", Translation: "Sovereign of the Day of Recompense.", Juz: 1, Page: 1},
	{Number: 5, Text: "إِيَّاكَ نَعْبُدُ وَإِيَّاكَ نَسْتَعِينُ", Translation: "It is You we worship and You we ask for help.", Juz: 1, Page: 1},
	{Number: 6, Text: "اهْدِنَا الصِّرَاطَ الْمُسْتَقِيمَ", Translation: "Guide us to the straight path.", Juz: 1, Page: 1},
	{Number: 7, Text: "صِرَاطَ الَّذِينَ أَنْعَمْتَ عَلَيْهِمْ غَيْرِ الْمَغْضُوبِ عَلَيْهِمْ وَلَا الضَّالِّينَ", Translation: "The path of those upon whom You have bestowed favor, not of those who have evoked [Your] anger or of those who are astray.", Juz: 1, Page: 1},
}
