/*
 * MinIO Cloud Storage, (C) 2020 MinIO, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package fpconv

// cachedPowers holds normalized approximations of 10^k for k = -348..340
// in steps of cachedPowersDecimalDistance.
var cachedPowers = [...]cachedPower{
	{significand: 0xfa8fd5a0081c0288, binaryExponent: -1220, decimalExponent: -348},
	{significand: 0xbaaee17fa23ebf76, binaryExponent: -1193, decimalExponent: -340},
	{significand: 0x8b16fb203055ac76, binaryExponent: -1166, decimalExponent: -332},
	{significand: 0xcf42894a5dce35ea, binaryExponent: -1140, decimalExponent: -324},
	{significand: 0x9a6bb0aa55653b2d, binaryExponent: -1113, decimalExponent: -316},
	{significand: 0xe61acf033d1a45df, binaryExponent: -1087, decimalExponent: -308},
	{significand: 0xab70fe17c79ac6ca, binaryExponent: -1060, decimalExponent: -300},
	{significand: 0xff77b1fcbebcdc4f, binaryExponent: -1034, decimalExponent: -292},
	{significand: 0xbe5691ef416bd60c, binaryExponent: -1007, decimalExponent: -284},
	{significand: 0x8dd01fad907ffc3c, binaryExponent: -980, decimalExponent: -276},
	{significand: 0xd3515c2831559a83, binaryExponent: -954, decimalExponent: -268},
	{significand: 0x9d71ac8fada6c9b5, binaryExponent: -927, decimalExponent: -260},
	{significand: 0xea9c227723ee8bcb, binaryExponent: -901, decimalExponent: -252},
	{significand: 0xaecc49914078536d, binaryExponent: -874, decimalExponent: -244},
	{significand: 0x823c12795db6ce57, binaryExponent: -847, decimalExponent: -236},
	{significand: 0xc21094364dfb5637, binaryExponent: -821, decimalExponent: -228},
	{significand: 0x9096ea6f3848984f, binaryExponent: -794, decimalExponent: -220},
	{significand: 0xd77485cb25823ac7, binaryExponent: -768, decimalExponent: -212},
	{significand: 0xa086cfcd97bf97f4, binaryExponent: -741, decimalExponent: -204},
	{significand: 0xef340a98172aace5, binaryExponent: -715, decimalExponent: -196},
	{significand: 0xb23867fb2a35b28e, binaryExponent: -688, decimalExponent: -188},
	{significand: 0x84c8d4dfd2c63f3b, binaryExponent: -661, decimalExponent: -180},
	{significand: 0xc5dd44271ad3cdba, binaryExponent: -635, decimalExponent: -172},
	{significand: 0x936b9fcebb25c996, binaryExponent: -608, decimalExponent: -164},
	{significand: 0xdbac6c247d62a584, binaryExponent: -582, decimalExponent: -156},
	{significand: 0xa3ab66580d5fdaf6, binaryExponent: -555, decimalExponent: -148},
	{significand: 0xf3e2f893dec3f126, binaryExponent: -529, decimalExponent: -140},
	{significand: 0xb5b5ada8aaff80b8, binaryExponent: -502, decimalExponent: -132},
	{significand: 0x87625f056c7c4a8b, binaryExponent: -475, decimalExponent: -124},
	{significand: 0xc9bcff6034c13053, binaryExponent: -449, decimalExponent: -116},
	{significand: 0x964e858c91ba2655, binaryExponent: -422, decimalExponent: -108},
	{significand: 0xdff9772470297ebd, binaryExponent: -396, decimalExponent: -100},
	{significand: 0xa6dfbd9fb8e5b88f, binaryExponent: -369, decimalExponent: -92},
	{significand: 0xf8a95fcf88747d94, binaryExponent: -343, decimalExponent: -84},
	{significand: 0xb94470938fa89bcf, binaryExponent: -316, decimalExponent: -76},
	{significand: 0x8a08f0f8bf0f156b, binaryExponent: -289, decimalExponent: -68},
	{significand: 0xcdb02555653131b6, binaryExponent: -263, decimalExponent: -60},
	{significand: 0x993fe2c6d07b7fac, binaryExponent: -236, decimalExponent: -52},
	{significand: 0xe45c10c42a2b3b06, binaryExponent: -210, decimalExponent: -44},
	{significand: 0xaa242499697392d3, binaryExponent: -183, decimalExponent: -36},
	{significand: 0xfd87b5f28300ca0e, binaryExponent: -157, decimalExponent: -28},
	{significand: 0xbce5086492111aeb, binaryExponent: -130, decimalExponent: -20},
	{significand: 0x8cbccc096f5088cc, binaryExponent: -103, decimalExponent: -12},
	{significand: 0xd1b71758e219652c, binaryExponent: -77, decimalExponent: -4},
	{significand: 0x9c40000000000000, binaryExponent: -50, decimalExponent: 4},
	{significand: 0xe8d4a51000000000, binaryExponent: -24, decimalExponent: 12},
	{significand: 0xad78ebc5ac620000, binaryExponent: 3, decimalExponent: 20},
	{significand: 0x813f3978f8940984, binaryExponent: 30, decimalExponent: 28},
	{significand: 0xc097ce7bc90715b3, binaryExponent: 56, decimalExponent: 36},
	{significand: 0x8f7e32ce7bea5c70, binaryExponent: 83, decimalExponent: 44},
	{significand: 0xd5d238a4abe98068, binaryExponent: 109, decimalExponent: 52},
	{significand: 0x9f4f2726179a2245, binaryExponent: 136, decimalExponent: 60},
	{significand: 0xed63a231d4c4fb27, binaryExponent: 162, decimalExponent: 68},
	{significand: 0xb0de65388cc8ada8, binaryExponent: 189, decimalExponent: 76},
	{significand: 0x83c7088e1aab65db, binaryExponent: 216, decimalExponent: 84},
	{significand: 0xc45d1df942711d9a, binaryExponent: 242, decimalExponent: 92},
	{significand: 0x924d692ca61be758, binaryExponent: 269, decimalExponent: 100},
	{significand: 0xda01ee641a708dea, binaryExponent: 295, decimalExponent: 108},
	{significand: 0xa26da3999aef774a, binaryExponent: 322, decimalExponent: 116},
	{significand: 0xf209787bb47d6b85, binaryExponent: 348, decimalExponent: 124},
	{significand: 0xb454e4a179dd1877, binaryExponent: 375, decimalExponent: 132},
	{significand: 0x865b86925b9bc5c2, binaryExponent: 402, decimalExponent: 140},
	{significand: 0xc83553c5c8965d3d, binaryExponent: 428, decimalExponent: 148},
	{significand: 0x952ab45cfa97a0b3, binaryExponent: 455, decimalExponent: 156},
	{significand: 0xde469fbd99a05fe3, binaryExponent: 481, decimalExponent: 164},
	{significand: 0xa59bc234db398c25, binaryExponent: 508, decimalExponent: 172},
	{significand: 0xf6c69a72a3989f5c, binaryExponent: 534, decimalExponent: 180},
	{significand: 0xb7dcbf5354e9bece, binaryExponent: 561, decimalExponent: 188},
	{significand: 0x88fcf317f22241e2, binaryExponent: 588, decimalExponent: 196},
	{significand: 0xcc20ce9bd35c78a5, binaryExponent: 614, decimalExponent: 204},
	{significand: 0x98165af37b2153df, binaryExponent: 641, decimalExponent: 212},
	{significand: 0xe2a0b5dc971f303a, binaryExponent: 667, decimalExponent: 220},
	{significand: 0xa8d9d1535ce3b396, binaryExponent: 694, decimalExponent: 228},
	{significand: 0xfb9b7cd9a4a7443c, binaryExponent: 720, decimalExponent: 236},
	{significand: 0xbb764c4ca7a44410, binaryExponent: 747, decimalExponent: 244},
	{significand: 0x8bab8eefb6409c1a, binaryExponent: 774, decimalExponent: 252},
	{significand: 0xd01fef10a657842c, binaryExponent: 800, decimalExponent: 260},
	{significand: 0x9b10a4e5e9913129, binaryExponent: 827, decimalExponent: 268},
	{significand: 0xe7109bfba19c0c9d, binaryExponent: 853, decimalExponent: 276},
	{significand: 0xac2820d9623bf429, binaryExponent: 880, decimalExponent: 284},
	{significand: 0x80444b5e7aa7cf85, binaryExponent: 907, decimalExponent: 292},
	{significand: 0xbf21e44003acdd2d, binaryExponent: 933, decimalExponent: 300},
	{significand: 0x8e679c2f5e44ff8f, binaryExponent: 960, decimalExponent: 308},
	{significand: 0xd433179d9c8cb841, binaryExponent: 986, decimalExponent: 316},
	{significand: 0x9e19db92b4e31ba9, binaryExponent: 1013, decimalExponent: 324},
	{significand: 0xeb96bf6ebadf77d9, binaryExponent: 1039, decimalExponent: 332},
	{significand: 0xaf87023b9bf0ee6b, binaryExponent: 1066, decimalExponent: 340},
}
